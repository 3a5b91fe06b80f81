// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoler

import "fmt"

// MetadataError reports malformed action metadata: a mistake by the
// author of the target type, not by the end user. It names the
// offending action and parameter where known.
type MetadataError struct {
	Action string
	Param  string
	Reason string
}

func (e *MetadataError) Error() string {
	switch {
	case e.Param != "":
		return fmt.Sprintf("action %q: parameter %q: %s", e.Action, e.Param, e.Reason)
	case e.Action != "":
		return fmt.Sprintf("action %q: %s", e.Action, e.Reason)
	default:
		return e.Reason
	}
}

// BindError reports an argument vector that does not satisfy an
// action's declared parameters.
type BindError struct {
	Action string
	Reason string
}

func (e *BindError) Error() string { return e.Reason }

// ConversionError reports a token whose textual form cannot represent
// its target type. Overflow relative to the target's native range is
// reported distinctly from a malformed value.
type ConversionError struct {
	Token    string
	Type     string
	Overflow bool
}

func (e *ConversionError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("value %q is out of range for type %s", e.Token, e.Type)
	}
	return fmt.Sprintf("cannot convert value %q to type %s", e.Token, e.Type)
}

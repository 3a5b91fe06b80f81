// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoler

import (
	"fmt"
	"reflect"
	"strings"
)

// flagMarker prefixes every named-parameter token.
const flagMarker = "/"

// bind matches a raw argument vector against one action's parameters
// and returns the populated parameter struct, ready for invocation.
// In multi-command mode the first token is the sub-command selector
// and is excluded from positional counting.
//
// All structural validation (required count, flag-marker shape,
// duplicate and unknown names) completes before any flagged value is
// converted.
func bind(a *Action, args []string, multi bool) (reflect.Value, error) {
	if multi && len(args) > 0 {
		args = args[1:]
	}

	out := reflect.New(a.argsType).Elem()

	var required []*Param
	aliases := make(map[string]*Param)
	for i := range a.Params {
		p := &a.Params[i]
		if p.Kind == Positional {
			required = append(required, p)
			continue
		}
		for _, name := range p.names() {
			aliases[name] = p
		}
		if p.HasDefault {
			v, err := convertValue(p.Default, p.Type)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Field(p.field).Set(v)
		}
	}

	// Positional walk: consume tokens by position. A short vector is
	// deferred to the count check below.
	for i, p := range required {
		if i >= len(args) {
			break
		}
		v, err := convertValue(args[i], p.Type)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Field(p.field).Set(v)
	}
	if len(args) < len(required) {
		return reflect.Value{}, &BindError{Action: a.Name, Reason: "not all required parameters are set"}
	}

	// Everything after the required positions must be flagged tokens.
	// Validate all of them before converting any.
	type pending struct {
		param *Param
		text  string
	}
	var pendings []pending
	set := make(map[string]bool)
	for _, tok := range args[len(required):] {
		name, text, ok := classifyFlag(tok)
		if !ok {
			return reflect.Value{}, &BindError{
				Action: a.Name,
				Reason: fmt.Sprintf("unexpected argument %q: optional parameters use %sname syntax", tok, flagMarker),
			}
		}
		p, ok := aliases[name]
		if !ok {
			return reflect.Value{}, &BindError{
				Action: a.Name,
				Reason: fmt.Sprintf("unknown parameter name %q", tok),
			}
		}
		if set[p.Name] {
			return reflect.Value{}, &BindError{
				Action: a.Name,
				Reason: fmt.Sprintf("parameter %q is set more than once", name),
			}
		}
		set[p.Name] = true
		pendings = append(pendings, pending{p, text})
	}

	for _, pd := range pendings {
		v, err := convertValue(pd.text, pd.param.Type)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Field(pd.param.field).Set(v)
	}

	return out, nil
}

// classifyFlag splits a flagged token into its parameter name and
// value text. /name:value is an assignment, /name a bare boolean
// (value forced to true), and /-name a negated boolean (value forced
// to false; any trailing :value is ignored). ok is false when the
// token does not start with the flag marker.
func classifyFlag(tok string) (name, value string, ok bool) {
	if !strings.HasPrefix(tok, flagMarker) {
		return "", "", false
	}
	body := tok[len(flagMarker):]
	if rest, negated := strings.CutPrefix(body, "-"); negated {
		name = rest
		if i := strings.Index(name, ":"); i >= 0 {
			name = name[:i]
		}
		return name, "false", true
	}
	if name, value, assigned := strings.Cut(body, ":"); assigned {
		return name, value, true
	}
	return body, "true", true
}

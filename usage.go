// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoler

import (
	"fmt"
	"reflect"
	"strings"
)

// actionUsage renders the usage block for one action: the usage line,
// then a description for each optional parameter that has one, aligned
// by padding to the longest display token. sub includes the
// sub-command name in the usage line (multi-command mode).
func actionUsage(prog string, a *Action, sub bool) []string {
	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(prog)
	if sub {
		b.WriteString(" ")
		b.WriteString(strings.ToLower(a.Name))
	}
	for i := range a.Params {
		p := &a.Params[i]
		b.WriteString(" ")
		if p.Kind == Positional {
			b.WriteString(p.Name)
		} else {
			b.WriteString("[" + displayToken(p) + "]")
		}
	}
	lines := []string{b.String()}

	width := 0
	for i := range a.Params {
		p := &a.Params[i]
		if p.Kind == Named && p.Help != "" && len(displayToken(p)) > width {
			width = len(displayToken(p))
		}
	}
	for i := range a.Params {
		p := &a.Params[i]
		if p.Kind != Named || p.Help == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("    %-*s %s (default: %s)",
			width, displayToken(p), p.Help, defaultText(p)))
	}
	return lines
}

// registryUsage renders the generic multi-command banner: the usage
// line, a hint for per-subcommand help, and one lower-cased
// sub-command name per line.
func registryUsage(prog string, r *Registry) []string {
	lines := []string{
		fmt.Sprintf("usage: %s <subcommand> [args]", prog),
		fmt.Sprintf("run '%s help <subcommand>' for subcommand usage", prog),
	}
	for i := range r.actions {
		lines = append(lines, strings.ToLower(r.actions[i].Name))
	}
	return lines
}

// displayToken is how an optional parameter appears in usage output:
// its first alternate name when one exists, otherwise its primary
// name, with a type hint appended for non-boolean types.
func displayToken(p *Param) string {
	name := p.Name
	if len(p.AltNames) > 0 {
		name = p.AltNames[0]
	}
	tok := flagMarker + name
	if hint := typeHint(p.Type); hint != "" {
		tok += ":" + hint
	}
	return tok
}

// defaultText renders a parameter's default in its type's natural
// textual form.
func defaultText(p *Param) string {
	if p.HasDefault {
		return p.Default
	}
	return zeroText(p.Type)
}

func zeroText(t reflect.Type) string {
	if t == timeType {
		return ""
	}
	switch t.Kind() {
	case reflect.Bool:
		return "false"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "0"
	case reflect.Float32, reflect.Float64:
		return "0"
	default:
		return ""
	}
}

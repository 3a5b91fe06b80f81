// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoler

import (
	"reflect"
	"strings"
)

// ParamKind distinguishes required positional parameters from optional
// named ones.
type ParamKind int

const (
	// Positional parameters are required and consumed from the
	// argument vector by position, in declaration order.
	Positional ParamKind = iota
	// Named parameters are optional and supplied with /name flag
	// syntax, or defaulted.
	Named
)

// Param describes one parameter of an action.
type Param struct {
	// Name is the primary parameter name. Flag matching against it is
	// case-sensitive.
	Name string
	// Kind is Positional or Named.
	Kind ParamKind
	// Type is the declared Go type of the parameter.
	Type reflect.Type
	// AltNames holds alternate flag names (Named only).
	AltNames []string
	// Default is the textual default value (Named only). It is
	// converted with the same rules as a supplied argument.
	Default string
	// HasDefault reports whether a default was declared. A Named
	// parameter without one defaults to its type's zero value.
	HasDefault bool
	// Help is the human-readable description shown in usage output.
	Help string

	field        int  // index of the field in the parameter struct
	declaredBoth bool // carries both arg and flag tags
}

// names returns the primary name followed by any alternate names.
func (p *Param) names() []string {
	return append([]string{p.Name}, p.AltNames...)
}

// Action is one invocable entry point on a target, analogous to a CLI
// sub-command.
type Action struct {
	// Name identifies the action. Sub-command matching against it is
	// case-insensitive.
	Name string
	// Func is the callable, of type func(ArgsStruct) or
	// func(ArgsStruct) error.
	Func reflect.Value
	// Params lists the action's parameters in declaration order.
	Params []Param

	argsType reflect.Type
}

// invoke calls the action with a populated parameter struct and
// returns the action's own error, if any, unmodified.
func (a *Action) invoke(args reflect.Value) error {
	out := a.Func.Call([]reflect.Value{args})
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}

// Registry is the set of discovered actions for one target. It is
// built fresh per dispatch and read-only thereafter.
type Registry struct {
	actions []Action
}

// Actions returns the registered actions in discovery order.
func (r *Registry) Actions() []Action { return r.actions }

// Multi reports whether the registry is in multi-command mode, where
// the first argument selects the action.
func (r *Registry) Multi() bool { return len(r.actions) > 1 }

// Action looks up an action by name, case-insensitively.
func (r *Registry) Action(name string) (*Action, bool) {
	for i := range r.actions {
		if strings.EqualFold(r.actions[i].Name, name) {
			return &r.actions[i], true
		}
	}
	return nil, false
}

// paramsOf derives parameter descriptors from the exported fields of a
// parameter struct type. Tag problems that need precise diagnostics
// (conflicting qualifiers, bad defaults, duplicate names) are recorded
// on the descriptors and reported by the metadata validator, which
// knows the owning action's name.
func paramsOf(t reflect.Type) []Param {
	var params []Param
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		argName, hasArg := field.Tag.Lookup("arg")
		flagName, hasFlag := field.Tag.Lookup("flag")
		defaultVal, hasDefault := field.Tag.Lookup("default")

		p := Param{
			Kind:         Positional,
			Type:         field.Type,
			Default:      defaultVal,
			HasDefault:   hasDefault,
			Help:         field.Tag.Get("help"),
			field:        i,
			declaredBoth: hasArg && hasFlag,
		}

		name := argName
		if hasFlag {
			p.Kind = Named
			name = flagName
			if alt := field.Tag.Get("alt"); alt != "" {
				for _, a := range strings.Split(alt, ",") {
					if a = strings.TrimSpace(a); a != "" {
						p.AltNames = append(p.AltNames, a)
					}
				}
			}
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		p.Name = name

		params = append(params, p)
	}
	return params
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoler

import "fmt"

// validateRegistry runs the static metadata checks over every action
// in the registry. It runs once per dispatch, before any binding, and
// a failure halts the run. Errors name the offending action and
// parameter.
func validateRegistry(r *Registry) error {
	if len(r.actions) == 0 {
		return &MetadataError{Reason: "no actions declared on target"}
	}
	if len(r.actions) == 1 && len(r.actions[0].Params) == 0 {
		return &MetadataError{
			Action: r.actions[0].Name,
			Reason: "a sole action must declare at least one parameter",
		}
	}
	for i := range r.actions {
		if err := validateAction(&r.actions[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateAction(a *Action) error {
	seen := make(map[string]bool)
	optionalSeen := false

	for i := range a.Params {
		p := &a.Params[i]
		fail := func(format string, args ...any) error {
			return &MetadataError{
				Action: a.Name,
				Param:  p.Name,
				Reason: fmt.Sprintf(format, args...),
			}
		}

		if p.declaredBoth {
			return fail("declared both positional and optional")
		}
		if p.Kind == Named {
			optionalSeen = true
		} else if optionalSeen {
			return fail("required parameter declared after an optional parameter")
		}
		if !supportedType(p.Type) {
			return fail("unsupported parameter type %s", p.Type)
		}
		if p.HasDefault {
			if p.Kind == Positional {
				return fail("default value declared on a required parameter")
			}
			if _, err := convertValue(p.Default, p.Type); err != nil {
				return fail("default value %q is not a valid %s", p.Default, typeLabel(p.Type))
			}
		}
		for _, name := range p.names() {
			if seen[name] {
				return fail("duplicate parameter name %q", name)
			}
			seen[name] = true
		}
	}
	return nil
}

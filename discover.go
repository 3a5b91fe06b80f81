// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoler

import (
	"fmt"
	"reflect"
)

// ActionSource supplies pre-built action descriptors, bypassing
// reflection-based discovery. Targets that implement it hand the
// binder a structured view of their actions directly.
type ActionSource interface {
	Actions() ([]Action, error)
}

// NewAction builds an action descriptor from a name and a callable of
// type func(ArgsStruct) or func(ArgsStruct) error. It is the
// constructor ActionSource implementations use.
func NewAction(name string, fn any) (Action, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return Action{}, fmt.Errorf("action %q: not a function", name)
	}
	t := v.Type()
	if !actionShape(t, 0) {
		return Action{}, fmt.Errorf("action %q: want func(ArgsStruct) or func(ArgsStruct) error, got %s", name, t)
	}
	argsType := t.In(0)
	return Action{
		Name:     name,
		Func:     v,
		Params:   paramsOf(argsType),
		argsType: argsType,
	}, nil
}

// Discover builds the action registry for a target. If the target
// implements ActionSource its descriptors are used as-is; otherwise
// the target's exported methods with the action shape (one struct
// parameter, at most an error result) become the actions, named after
// the methods. Pass a pointer to reach pointer-receiver methods.
func Discover(target any) (*Registry, error) {
	if src, ok := target.(ActionSource); ok {
		actions, err := src.Actions()
		if err != nil {
			return nil, err
		}
		return &Registry{actions: actions}, nil
	}

	v := reflect.ValueOf(target)
	if !v.IsValid() {
		return nil, fmt.Errorf("nil target")
	}
	t := v.Type()

	var actions []Action
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() || !actionShape(m.Type, 1) {
			continue
		}
		argsType := m.Type.In(1)
		actions = append(actions, Action{
			Name:     m.Name,
			Func:     v.Method(i),
			Params:   paramsOf(argsType),
			argsType: argsType,
		})
	}
	return &Registry{actions: actions}, nil
}

// actionShape reports whether t is an action callable: one struct
// parameter and either no results or a single error. skip ignores a
// leading receiver parameter on method types.
func actionShape(t reflect.Type, skip int) bool {
	if t.NumIn() != skip+1 || t.In(skip).Kind() != reflect.Struct {
		return false
	}
	switch t.NumOut() {
	case 0:
		return true
	case 1:
		return t.Out(0) == errType
	}
	return false
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoler

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// listDelim separates elements of list-valued tokens, and dateDelim
// separates the day, month and year of date tokens.
const (
	listDelim = "+"
	dateDelim = "-"
)

var (
	timeType        = reflect.TypeOf(time.Time{})
	errType         = reflect.TypeOf((*error)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// convertValue converts a single textual token into a value of type t.
// The supported set is closed: strings, booleans, the integer and
// float kinds, +-delimited string and int lists, dd-mm-yyyy dates, and
// any type implementing encoding.TextUnmarshaler. Asking for anything
// else is a metadata mistake, reported as such.
func convertValue(token string, t reflect.Type) (reflect.Value, error) {
	if t == timeType {
		return convertDate(token)
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		pv := reflect.New(t)
		if err := pv.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(token)); err != nil {
			return reflect.Value{}, &ConversionError{Token: token, Type: typeLabel(t)}
		}
		return pv.Elem(), nil
	}

	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(token).Convert(t), nil

	case reflect.Bool:
		// Canonical forms only.
		switch token {
		case "true":
			return reflect.ValueOf(true).Convert(t), nil
		case "false":
			return reflect.ValueOf(false).Convert(t), nil
		}
		return reflect.Value{}, &ConversionError{Token: token, Type: typeLabel(t)}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(token, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, numError(token, t, err)
		}
		v := reflect.New(t).Elem()
		v.SetInt(n)
		return v, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(token, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, numError(token, t, err)
		}
		v := reflect.New(t).Elem()
		v.SetUint(n)
		return v, nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(token, t.Bits())
		if err != nil {
			return reflect.Value{}, numError(token, t, err)
		}
		v := reflect.New(t).Elem()
		v.SetFloat(f)
		return v, nil

	case reflect.Slice:
		return convertList(token, t)
	}

	return reflect.Value{}, fmt.Errorf("unsupported parameter type %s", t)
}

// convertList splits a token on the list delimiter and converts each
// element individually.
func convertList(token string, t reflect.Type) (reflect.Value, error) {
	elem := t.Elem()
	if elem.Kind() != reflect.String && elem.Kind() != reflect.Int {
		return reflect.Value{}, fmt.Errorf("unsupported parameter type %s", t)
	}
	parts := strings.Split(token, listDelim)
	out := reflect.MakeSlice(t, len(parts), len(parts))
	for i, part := range parts {
		v, err := convertValue(part, elem)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(v)
	}
	return out, nil
}

// convertDate parses a dd-mm-yyyy token into a calendar date. Any
// failure, including a calendar-invalid value like 31-02, reports the
// original token.
func convertDate(token string) (reflect.Value, error) {
	fail := func() (reflect.Value, error) {
		return reflect.Value{}, &ConversionError{Token: token, Type: "date"}
	}
	parts := strings.Split(token, dateDelim)
	if len(parts) != 3 {
		return fail()
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fail()
		}
		nums[i] = int(n)
	}
	day, month, year := nums[0], nums[1], nums[2]
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components; a round-trip
	// mismatch means the calendar value was invalid.
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return fail()
	}
	return reflect.ValueOf(d), nil
}

// numError maps a strconv failure onto a ConversionError, keeping
// range overflow distinct from a malformed value.
func numError(token string, t reflect.Type, err error) error {
	var ne *strconv.NumError
	overflow := errors.As(err, &ne) && ne.Err == strconv.ErrRange
	return &ConversionError{Token: token, Type: typeLabel(t), Overflow: overflow}
}

// supportedType reports whether t is in the closed set of semantic
// types the converter handles.
func supportedType(t reflect.Type) bool {
	if t == timeType || reflect.PointerTo(t).Implements(unmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice:
		return t.Elem().Kind() == reflect.String || t.Elem().Kind() == reflect.Int
	}
	return false
}

// typeLabel names a type in error messages.
func typeLabel(t reflect.Type) string {
	if t == timeType {
		return "date"
	}
	return t.String()
}

// typeHint is the hint appended to a flag's display token in usage
// output. Booleans take no hint.
func typeHint(t reflect.Type) string {
	if t == timeType {
		return "dd-mm-yyyy"
	}
	switch t.Kind() {
	case reflect.Bool:
		return ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Int {
			return "number[+number]"
		}
		return "value[+value]"
	default:
		return "value"
	}
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoler

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"
)

// orderSide exercises the TextUnmarshaler path: an enumeration
// constructible from a string.
type orderSide string

func (s *orderSide) UnmarshalText(b []byte) error {
	switch string(b) {
	case "buy", "sell":
		*s = orderSide(b)
		return nil
	}
	return fmt.Errorf("bad side %q", b)
}

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		typ     reflect.Type
		want    any
		wantErr string
	}{
		{name: "string identity", token: "hello world", typ: reflect.TypeOf(""), want: "hello world"},
		{name: "int", token: "42", typ: reflect.TypeOf(0), want: 42},
		{name: "negative int", token: "-7", typ: reflect.TypeOf(0), want: -7},
		{name: "int malformed", token: "abc", typ: reflect.TypeOf(0), wantErr: `cannot convert value "abc" to type int`},
		{name: "int8 overflow", token: "128", typ: reflect.TypeOf(int8(0)), wantErr: `value "128" is out of range for type int8`},
		{name: "uint rejects sign", token: "-1", typ: reflect.TypeOf(uint(0)), wantErr: `cannot convert value "-1" to type uint`},
		{name: "uint8 overflow", token: "256", typ: reflect.TypeOf(uint8(0)), wantErr: `value "256" is out of range for type uint8`},
		{name: "float", token: "0.95", typ: reflect.TypeOf(float64(0)), want: 0.95},
		{name: "bool true", token: "true", typ: reflect.TypeOf(false), want: true},
		{name: "bool false", token: "false", typ: reflect.TypeOf(false), want: false},
		{name: "bool rejects mixed case", token: "True", typ: reflect.TypeOf(false), wantErr: `cannot convert value "True" to type bool`},
		{name: "bool rejects numeric", token: "1", typ: reflect.TypeOf(false), wantErr: `cannot convert value "1" to type bool`},
		{name: "string list", token: "a+b+c", typ: reflect.TypeOf([]string{}), want: []string{"a", "b", "c"}},
		{name: "single element list", token: "solo", typ: reflect.TypeOf([]string{}), want: []string{"solo"}},
		{name: "int list", token: "1+2+3", typ: reflect.TypeOf([]int{}), want: []int{1, 2, 3}},
		{name: "int list bad element", token: "1+x+3", typ: reflect.TypeOf([]int{}), wantErr: `cannot convert value "x" to type int`},
		{name: "date", token: "31-12-2008", typ: timeType, want: time.Date(2008, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{name: "date new year", token: "01-01-2009", typ: timeType, want: time.Date(2009, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{name: "date missing segment", token: "12-2008", typ: timeType, wantErr: `cannot convert value "12-2008" to type date`},
		{name: "date invalid calendar day", token: "31-02-2009", typ: timeType, wantErr: `cannot convert value "31-02-2009" to type date`},
		{name: "date non-numeric segment", token: "aa-01-2009", typ: timeType, wantErr: `cannot convert value "aa-01-2009" to type date`},
		{name: "text unmarshaler", token: "buy", typ: reflect.TypeOf(orderSide("")), want: orderSide("buy")},
		{name: "text unmarshaler rejects", token: "hold", typ: reflect.TypeOf(orderSide("")), wantErr: `cannot convert value "hold" to type consoler.orderSide`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertValue(tt.token, tt.typ)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("convertValue(%q) = %v, want error %q", tt.token, got.Interface(), tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("convertValue(%q) error: %v", tt.token, err)
			}
			if !reflect.DeepEqual(got.Interface(), tt.want) {
				t.Errorf("convertValue(%q) = %#v, want %#v", tt.token, got.Interface(), tt.want)
			}
		})
	}
}

func TestConvertValueUnsupportedType(t *testing.T) {
	_, err := convertValue("x", reflect.TypeOf(map[string]int{}))
	if err == nil || !strings.Contains(err.Error(), "unsupported parameter type map[string]int") {
		t.Fatalf("error = %v, want unsupported parameter type", err)
	}
}

func TestStringListRoundTrip(t *testing.T) {
	const token = "a+b+c"
	v, err := convertValue(token, reflect.TypeOf([]string{}))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(v.Interface().([]string), listDelim); got != token {
		t.Errorf("round-trip = %q, want %q", got, token)
	}
}

func TestTypeHint(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeOf(0), "number"},
		{reflect.TypeOf(uint16(0)), "number"},
		{reflect.TypeOf(float64(0)), "number"},
		{reflect.TypeOf(""), "value"},
		{reflect.TypeOf(false), ""},
		{reflect.TypeOf([]string{}), "value[+value]"},
		{reflect.TypeOf([]int{}), "number[+number]"},
		{timeType, "dd-mm-yyyy"},
		{reflect.TypeOf(orderSide("")), "value"},
	}
	for _, tt := range tests {
		if got := typeHint(tt.typ); got != tt.want {
			t.Errorf("typeHint(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command greet is a single-action example. With no arguments it runs
// entirely on defaults:
//
//	greet
//	greet /name:gophers /times:3
//	greet /-shout
//	greet /?
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/yeetrun/consoler"
)

type greeter struct{}

type greetArgs struct {
	Name  string `flag:"name" default:"world" help:"Who to greet"`
	Times int    `flag:"times" alt:"n" default:"1" help:"How many times"`
	Shout bool   `flag:"shout" help:"Greet in upper case"`
}

func (greeter) Greet(a greetArgs) {
	msg := "hello, " + a.Name
	if a.Shout {
		msg = strings.ToUpper(msg)
	}
	for i := 0; i < a.Times; i++ {
		fmt.Println(msg)
	}
}

func main() {
	if err := consoler.Run(greeter{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

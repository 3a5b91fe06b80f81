// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoler

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// MessageSink receives every usage line and every validation-failure
// message, one call per line, in emission order.
type MessageSink interface {
	WriteLine(line string)
}

// ErrorSink is optionally implemented by sinks that want
// validation-failure lines distinguished from usage lines. The
// dispatcher routes failures through ErrorLine when available.
type ErrorSink interface {
	MessageSink
	ErrorLine(line string)
}

var (
	errColor     = color.New(color.FgRed)
	isTerminalFn = term.IsTerminal // swapped in tests
)

type writerSink struct {
	w     io.Writer
	color bool
}

// NewSink returns a sink writing plain lines to w.
func NewSink(w io.Writer) MessageSink { return &writerSink{w: w} }

// Stdout returns the default sink, writing to standard output.
// Validation-failure lines are colored red when stdout is a terminal.
func Stdout() MessageSink {
	return &writerSink{
		w:     os.Stdout,
		color: isTerminalFn(int(os.Stdout.Fd())),
	}
}

func (s *writerSink) WriteLine(line string) {
	fmt.Fprintln(s.w, line)
}

func (s *writerSink) ErrorLine(line string) {
	if s.color {
		errColor.Fprintln(s.w, line)
		return
	}
	fmt.Fprintln(s.w, line)
}

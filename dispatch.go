// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Help markers recognized as the first argument.
const (
	helpMarkerQ     = flagMarker + "?"
	helpMarkerLong  = flagMarker + "help"
	helpMarkerShort = flagMarker + "h"
	helpCommand     = "help"
)

// Outcome is the user-input result of a dispatch. Errors returned by
// the invoked action travel separately, as ordinary Go errors.
type Outcome int

const (
	// Success: the action was invoked, or help was shown.
	Success Outcome = iota
	// ValidationFailed: malformed metadata or arguments; a message was
	// written to the sink and the action was not invoked.
	ValidationFailed
)

// ExitCode is the process exit status an outcome maps to.
func (o Outcome) ExitCode() int {
	if o == ValidationFailed {
		return 1
	}
	return 0
}

// Dispatch selects an action on target for the given argument vector,
// binds and invokes it, writing usage and validation messages to
// standard output. The returned error is the invoked action's own
// error, unmodified; user-input problems are reported through the
// Outcome alone.
func Dispatch(target any, args []string) (Outcome, error) {
	return DispatchTo(target, args, Stdout())
}

// DispatchTo is Dispatch with an explicit message sink.
func DispatchTo(target any, args []string, sink MessageSink) (Outcome, error) {
	d := dispatcher{sink: sink, prog: progName()}
	reg, err := Discover(target)
	if err != nil {
		d.fail(err.Error())
		return ValidationFailed, nil
	}
	d.reg = reg
	return d.run(args)
}

// Run dispatches the process's own argument vector against target,
// writing messages to standard output. A validation failure terminates
// the process with exit status 1; an error from the invoked action is
// returned to the caller for its own error handling.
func Run(target any) error {
	outcome, err := Dispatch(target, os.Args[1:])
	if outcome == ValidationFailed {
		os.Exit(outcome.ExitCode())
	}
	return err
}

type dispatcher struct {
	reg  *Registry
	sink MessageSink
	prog string
}

func (d *dispatcher) run(args []string) (Outcome, error) {
	if err := validateRegistry(d.reg); err != nil {
		d.fail(err.Error())
		return ValidationFailed, nil
	}

	if done := d.handleHelp(args); done {
		return Success, nil
	}

	act, ok := d.selectAction(args)
	if !ok {
		return ValidationFailed, nil
	}

	bound, err := bind(act, args, d.reg.Multi())
	if err != nil {
		d.fail(err.Error())
		return ValidationFailed, nil
	}
	return Success, act.invoke(bound)
}

// handleHelp reports whether the argument vector is a help request,
// emitting the relevant usage when it is. An empty vector asks for
// help unless the sole action can run entirely on defaults.
func (d *dispatcher) handleHelp(args []string) bool {
	multi := d.reg.Multi()

	if len(args) == 0 {
		if !multi && !hasRequired(&d.reg.actions[0]) {
			return false
		}
		d.usageAll()
		return true
	}

	switch args[0] {
	case helpMarkerQ, helpMarkerLong, helpMarkerShort:
		d.usageAll()
		return true
	}

	if multi && strings.EqualFold(args[0], helpCommand) {
		if len(args) > 1 {
			if a, ok := d.reg.Action(args[1]); ok {
				d.emit(actionUsage(d.prog, a, true))
				return true
			}
		}
		d.usageAll()
		return true
	}
	return false
}

func (d *dispatcher) selectAction(args []string) (*Action, bool) {
	if !d.reg.Multi() {
		return &d.reg.actions[0], true
	}
	if a, ok := d.reg.Action(args[0]); ok {
		return a, true
	}
	d.usageAll()
	d.fail(fmt.Sprintf("unknown subcommand %q", args[0]))
	return nil, false
}

func (d *dispatcher) usageAll() {
	if d.reg.Multi() {
		d.emit(registryUsage(d.prog, d.reg))
		return
	}
	d.emit(actionUsage(d.prog, &d.reg.actions[0], false))
}

func (d *dispatcher) emit(lines []string) {
	for _, line := range lines {
		d.sink.WriteLine(line)
	}
}

func (d *dispatcher) fail(msg string) {
	if es, ok := d.sink.(ErrorSink); ok {
		es.ErrorLine(msg)
		return
	}
	d.sink.WriteLine(msg)
}

func hasRequired(a *Action) bool {
	for i := range a.Params {
		if a.Params[i].Kind == Positional {
			return true
		}
	}
	return false
}

func progName() string {
	return filepath.Base(os.Args[0])
}

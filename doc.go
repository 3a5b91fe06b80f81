// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package consoler binds raw command-line argument vectors to typed
// method parameters and invokes the selected method, printing a usage
// message instead of invoking on any validation failure.
//
// A target exposes actions as exported methods taking a single struct
// parameter. Exported fields of that struct declare the action's
// parameters in order: untagged or `arg`-tagged fields are required
// and supplied positionally; `flag`-tagged fields are optional and
// supplied with /name flag syntax.
//
//	type DownloadArgs struct {
//	    URL     string `arg:"url" help:"Source URL"`
//	    Retries int    `flag:"retries" alt:"r" default:"3" help:"Retry count"`
//	    Quiet   bool   `flag:"quiet" help:"Suppress progress output"`
//	}
//
//	type App struct{}
//
//	func (App) Download(a DownloadArgs) error {
//	    return fetch(a.URL, a.Retries, a.Quiet)
//	}
//
//	func main() {
//	    if err := consoler.Run(App{}); err != nil {
//	        fmt.Fprintln(os.Stderr, err)
//	        os.Exit(1)
//	    }
//	}
//
// The program above accepts:
//
//	download https://example.com/file
//	download https://example.com/file /retries:5 /quiet
//	download https://example.com/file /r:5
//	download /help
//
// # Flag syntax
//
// Optional parameters use a /name grammar: /name:value assigns a
// value, /name sets a boolean parameter to true, and /-name sets it to
// false. List values use + as the element delimiter (/tags:a+b+c) and
// dates use dd-mm-yyyy (/since:31-12-2008).
//
// # Sub-commands
//
// A target with more than one action method is dispatched by
// sub-command: the first argument selects the action, matched
// case-insensitively against the method name. "help" alone prints the
// list of sub-commands; "help NAME" prints one action's usage.
//
// # Errors
//
// Malformed metadata, missing required arguments, unknown or duplicate
// flags, and unconvertible values are written to the message sink and
// reported through the Outcome return; they never reach the caller as
// errors. An error returned by the invoked action itself propagates to
// the Dispatch caller unmodified.
package consoler

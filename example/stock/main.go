// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stock is a multi-action example. The first argument selects
// the action, matched case-insensitively:
//
//	stock buy ACME 100 /limit:12.5 /tags:urgent+retail
//	stock sell ACME 50 /-confirm
//	stock report ACME /since:01-01-2009
//	stock help sell
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/yeetrun/consoler"
)

type desk struct{}

type buyArgs struct {
	Symbol string   `arg:"symbol" help:"Ticker symbol"`
	Qty    int      `arg:"qty"`
	Limit  float64  `flag:"limit" default:"0" help:"Limit price, 0 for market"`
	Tags   []string `flag:"tags" alt:"t" help:"Order tags"`
}

type sellArgs struct {
	Symbol  string `arg:"symbol"`
	Qty     int    `arg:"qty"`
	Confirm bool   `flag:"confirm" default:"true" help:"Ask before submitting"`
}

type reportArgs struct {
	Symbol string    `arg:"symbol"`
	Since  time.Time `flag:"since" help:"Start date"`
	Lots   []int     `flag:"lots" help:"Restrict to lot numbers"`
}

func (desk) Buy(a buyArgs) error {
	fmt.Printf("buy %d %s limit=%g tags=%v\n", a.Qty, a.Symbol, a.Limit, a.Tags)
	return nil
}

func (desk) Sell(a sellArgs) error {
	fmt.Printf("sell %d %s confirm=%v\n", a.Qty, a.Symbol, a.Confirm)
	return nil
}

func (desk) Report(a reportArgs) error {
	since := "open"
	if !a.Since.IsZero() {
		since = a.Since.Format("02-01-2006")
	}
	fmt.Printf("report %s since=%s lots=%v\n", a.Symbol, since, a.Lots)
	return nil
}

func main() {
	if err := consoler.Run(desk{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

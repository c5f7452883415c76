// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Command rawinfo prints the header and directory tree of a TIFF based raw image file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bep/rawmeta"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rawinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "print decoder warnings")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: rawinfo [-v] <file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	logger := log.New(stderr, "rawinfo: ", 0)

	var opts rawmeta.Options
	if *verbose {
		opts.Warnf = logger.Printf
	}

	res, err := rawmeta.DecodeFile(fs.Arg(0), opts)
	if err != nil {
		logger.Printf("%s: %v", fs.Arg(0), err)
		return 1
	}

	fmt.Fprintln(stdout, res.Header)
	for _, d := range res.Directories {
		fmt.Fprintln(stdout, d)
		for _, e := range d.Entries {
			fmt.Fprintf(stdout, "  %s: %s\n", e, e.DisplayValue())
		}
	}

	return 0
}

// SPDX-License-Identifier: MIT

// Command pcmatrix runs the bounded-buffer matrix producer/consumer engine.
//
//	pcmatrix [workers [buffer_size [matrices [mode]]]] [flags]
//	pcmatrix config [flags]
//
// Products are displayed on stdout followed by a summary; logs go to stderr.
// The exit status is 1 on a configuration error, a worker failure, or when
// the produced and consumed totals disagree.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

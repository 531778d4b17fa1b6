// Copyright ©2024 The Chromanum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chroma computes the chromatic number of a graph read from a
// file, or decides k-colorability when a k is supplied. Status (graph
// statistics, the chosen configuration, and the result) is printed as
// free-form text; the program is a pure function of its arguments. The
// doMain split and exit-code convention follow tetratelabs/wazero's
// cmd/wazero entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/colorworks/chromanum/chromatic"
	"github.com/colorworks/chromanum/config"
	"github.com/colorworks/chromanum/format"
	"github.com/colorworks/chromanum/graph"
	"github.com/colorworks/chromanum/search"
)

// Exit codes, per the error taxonomy: missing/malformed arguments,
// unreadable or unrecognized input file, allocation failure (reserved;
// nothing in this Go port triggers it directly, since the runtime handles
// out-of-memory conditions itself rather than surfacing a recoverable
// error), and an internal assertion failure.
const (
	exitMissingArgs = 10
	exitBadFile     = 5
	exitAllocation  = 4
	exitAssertion   = 16
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

// doMain is separated from main for unit testing.
func doMain(args []string, stdOut, stdErr io.Writer) int {
	logger := log.New(stdOut, "", 0)

	if len(args) < 2 {
		fmt.Fprintln(stdErr, "usage: chroma <graph-file> <nbVertices> [<k>]")
		return exitMissingArgs
	}
	path := args[0]
	nbVertices, err := strconv.Atoi(args[1])
	if err != nil || nbVertices < 0 {
		fmt.Fprintln(stdErr, "nbVertices must be a non-negative integer")
		return exitMissingArgs
	}
	k, hasK, err := parseK(args)
	if err != nil {
		fmt.Fprintln(stdErr, err)
		return exitMissingArgs
	}

	start := time.Now()

	g, err := format.Read(path, nbVertices)
	if err != nil {
		fmt.Fprintln(stdErr, err)
		return exitBadFile
	}

	logger.Printf("graph: |V|=%d |E|=%d maxDegree=%d avgDegree=%.3f density=%.4f balance=%.3f",
		g.NumVertices(), g.NumEdges(), g.MaxDegree(), g.AvgDegree(), g.Density(), g.Balance())

	cfg := config.Choose(g)
	logger.Printf("configuration: search=%s bounds=%s sorting=%s sortingRate=%d decayFactor=%.3f cs=%v",
		cfg.Search, cfg.Bounds, cfg.Policy.Ordering, cfg.Policy.SortingRate, cfg.Policy.DecayFactor, cfg.Policy.CS)

	var result chromatic.Result
	if hasK {
		logger.Printf("search: KCOLORING k=%d", k)
		result, err = chromatic.KColorable(g, k, cfg)
	} else {
		result, err = chromatic.Chromatic(g, cfg)
	}
	if errors.Is(err, search.ErrCapacity) {
		logger.Printf("X(G) > %d (too many colors)", graph.MaxColors)
		logger.Printf("elapsed: %.6fs", time.Since(start).Seconds())
		return 0
	}
	if err != nil {
		fmt.Fprintln(stdErr, err)
		return exitAssertion
	}

	if hasK {
		if result.Colors == nil {
			logger.Printf("%d-colorable: no", k)
		} else {
			logger.Printf("%d-colorable: yes", k)
		}
	} else {
		logger.Printf("X(G)=%d", result.K)
	}
	logger.Printf("elapsed: %.6fs", time.Since(start).Seconds())
	return 0
}

func parseK(args []string) (k int, hasK bool, err error) {
	if len(args) < 3 {
		return 0, false, nil
	}
	k, err = strconv.Atoi(args[2])
	if err != nil || k <= 0 {
		return 0, false, fmt.Errorf("k must be a positive integer")
	}
	return k, true, nil
}

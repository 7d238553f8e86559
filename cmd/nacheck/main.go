// SPDX-License-Identifier: MIT

// Command nacheck samples pseudo-random inputs and checks the algebraic
// contracts of lvgeom: inverse rotations, pivoted rotations, homogeneous round
// trips, double inversion, transposition, cross/dot identities and the
// single-observation statistics. It exits non-zero on the first violation.
//
//	nacheck list
//	nacheck run --seed 42 --samples 1000 --eps 1e-9
//	nacheck run --config nacheck.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

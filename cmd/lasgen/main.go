// SPDX-License-Identifier: MIT

// Command lasgen generates and checks Local Average Subdivision random fields.
//
//	lasgen grid --nx 100 --ny 60
//	lasgen generate --config field.yaml --out field.txt
//	lasgen stats --config field.yaml -n 500
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Command pearl is a command-line client for the NLPearl API.
//
// Settings come from flags, PEARL_* environment variables, a .env file or
// a config file, in that order of precedence:
//
//	pearl --api-version v1 outbound list
//	pearl pearl calls PEARL_ID --from 2024-01-01 --to 2024-01-31 --limit 20
//	pearl lead add PEARL_ID +15550001111 --external-id crm-42
//	pearl account --field creditBalance
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

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

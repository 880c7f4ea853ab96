// Command diff-contracts compares two OpenAPI contracts and exits non-zero
// when the new contract breaks consumers of the old one.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/contractdiff/cmd/diff-contracts/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

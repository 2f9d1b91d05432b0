// Package main provides the CLI entrypoint for balde-template-gen.
//
// balde-template-gen is a build-time template compiler that:
//   - Parses balde templates ({{ var }}, {{ fn(args) }}, {% include "x.h" %})
//   - Generates a C render function that fills one pre-escaped format string
//   - Generates the matching header declaring that function
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"balde-template-gen/internal/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := command.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

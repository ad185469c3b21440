// Command stencilgraph is the CLI entrypoint over the core pipeline: it
// reads an ASCII grid, runs it through pkg/scene, and prints a summary or
// a JSON drawable dump. It contains no rendering, stroking, or PNG
// export — those remain external collaborators — only a thin driver over
// the core's pure function, using a signal-aware ExecuteContext.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

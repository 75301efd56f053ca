package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// The logger may not be initialized yet, so report on stderr directly.
		os.Stderr.WriteString("benchtable: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}

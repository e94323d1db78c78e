// Command leveledit creates, inspects and edits level files from the shell.
//
//	leveledit new -name "First Steps" levels/01.yaml
//	leveledit add-tile -x 3 -y 11 -type Ground levels/01.yaml
//	leveledit watch assets/levels
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/iwanna/logger"
)

func main() {
	logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "leveledit:", err)
		os.Exit(1)
	}
}

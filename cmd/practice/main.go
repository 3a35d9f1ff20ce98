// Command practice runs the algorithm exercises from the terminal.
//
//	practice sort --algorithm bubble 5 3 8 1
//	practice search --target 7 1 3 5 7 9
//	practice exercises
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/daily-dev-lab/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(&app{}).ExecuteContext(ctx)

	stop()

	if err != nil {
		logger.Fatal("practice failed", "error", err)
	}
}

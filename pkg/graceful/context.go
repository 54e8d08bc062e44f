package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"weather-hunt/pkg/log"
	"weather-hunt/pkg/msg"
)

// Context returns a context canceled on SIGINT or SIGTERM. Calling cancel also stops listening for signals.
func Context(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			log.Info(msg.GetMessage("app.stop"))
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := newApp(os.LookupEnv)
	err := a.execute(ctx, a.command())
	stop()
	if err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/visionex-project/visiondetect/pkg/env"
)

func main() {
	env.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, newDetector)
	stop()
	os.Exit(code)
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"proximal/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cli.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

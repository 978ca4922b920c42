// Package main renders one watcher event into its chat notification payload.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	notificationscmd "github.com/louisbranch/steamwatch/internal/cmd/notifications"
	"github.com/louisbranch/steamwatch/internal/platform/config"
)

func main() {
	cfg, err := notificationscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitWithCode(config.ExitUsage, "parse flags: %v", err)
	}
	log.SetPrefix("[NOTIFICATIONS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := notificationscmd.Run(ctx, cfg); err != nil {
		log.Fatalf("render notification: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/marcelandrean/wabot/pkg/ai"
	"github.com/marcelandrean/wabot/pkg/commands"
	"github.com/marcelandrean/wabot/pkg/config"
	"github.com/marcelandrean/wabot/pkg/logger"
	"github.com/marcelandrean/wabot/pkg/message"
	"github.com/marcelandrean/wabot/pkg/wa"
)

var (
	version   = "dev"
	gitCommit string
)

func formatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

func printVersion() {
	fmt.Printf("wabot %s\n", formatVersion())
	fmt.Printf("  Go: %s\n", runtime.Version())
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		printVersion()
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wabot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Setup(cfg.LogLevel, cfg.LogFile)

	settings, err := config.LoadSettings(cfg.SettingsFile)
	if err != nil {
		return err
	}

	completer, err := ai.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := wa.NewBridgeClient(cfg.BridgeURL)
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Close()

	normalizer := message.NewNormalizer(client, cfg)
	dispatcher := commands.NewDispatcher(cfg, completer)
	dispatcher.SetSettings(settings)

	logger.InfoCF("wabot", "Bot started", map[string]interface{}{
		"version": formatVersion(),
		"prefix":  cfg.Prefix,
	})

	// Inbound events arrive one at a time; each is normalized and
	// dispatched before the next is read.
	client.Listen(ctx, func(ev *wa.Event) {
		m, ok := normalizer.Normalize(ev)
		if !ok {
			return
		}
		dispatcher.Dispatch(ctx, m)
	})

	logger.InfoC("wabot", "Shutting down")
	return nil
}

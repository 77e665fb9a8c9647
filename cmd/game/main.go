package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/laundry/internal/config"
	"github.com/tomz197/laundry/internal/loop/client"
	loopconfig "github.com/tomz197/laundry/internal/loop/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("LAUNDRY_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true, Prefix: "laundry"})
	if level, err := log.ParseLevel(config.GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}

	settings, err := loopconfig.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	c := client.NewClient(bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Settings: settings,
		Logger:   logger,
	})
	runErr := c.Run(ctx)
	stop()
	_ = term.Restore(fd, oldState)

	if runErr != nil {
		logger.Error("game error", "err", runErr)
		fmt.Fprintf(os.Stderr, "game error: %v\n", runErr)
		os.Exit(1)
	}
}

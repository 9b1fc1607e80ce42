package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/laneduel/shared/duel"
	"github.com/automoto/laneduel/tty"
)

func main() {
	frame := flag.Duration("frame", 50*time.Millisecond, "simulation step")
	logPath := flag.String("log", "", "write hit log to this file (the terminal is owned by the UI)")
	flag.Parse()

	// termbox owns stdout, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := duel.NewMatch(duel.DefaultRules())
	ui := tty.NewUI(m, duel.Catalog(), *frame)
	if err := ui.Run(ctx); err != nil {
		log.SetOutput(os.Stderr)
		log.Printf("laneduel-tty: %v", err)
		stop()
		os.Exit(1)
	}
}

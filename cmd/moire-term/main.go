package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"moire/moire"
	"moire/terminal"
)

func main() {
	if !moire.ParseMode(os.Args[1:]).Runs() {
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}

	seed := uint64(time.Now().UnixNano())
	runner, err := terminal.NewRunner(screen, moire.DefaultConfig(), rand.New(rand.NewPCG(seed, seed>>32|1)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer runner.Close()

	// Termination signals arrive as quit events
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	if err := runner.Run(); err != nil {
		runner.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

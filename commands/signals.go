package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// InterruptHandler terminates the process on SIGINT or SIGTERM after printing
// InterruptNotice. Workers that are still running are not cleaned up.
type InterruptHandler struct {
	Out io.Writer
	// Exit terminates the process, os.Exit if nil.
	Exit func(code int)

	sigs chan os.Signal
	done chan struct{}
}

// Start subscribes to signals and handles them in the background.
func (h *InterruptHandler) Start() {
	h.sigs = make(chan os.Signal, 1)
	h.done = make(chan struct{})
	signal.Notify(h.sigs, os.Interrupt, syscall.SIGTERM)

	go h.handle(h.sigs, h.done)
}

// Stop unsubscribes from signals.
func (h *InterruptHandler) Stop() {
	signal.Stop(h.sigs)
	close(h.done)
}

func (h *InterruptHandler) handle(sigs <-chan os.Signal, done <-chan struct{}) {
	exit := h.Exit
	if exit == nil {
		exit = os.Exit
	}

	select {
	case <-sigs:
		fmt.Fprintln(h.Out, InterruptNotice)
		exit(0)
	case <-done:
	}
}

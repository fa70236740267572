// Package core restores the terminal when a goroutine panics
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer is the part of a tcell screen needed to leave raw mode
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
	crashHooks  []func(r any)

	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// RegisterScreen sets the screen finalized before a crash report is printed; nil clears it
func RegisterScreen(s Finalizer) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// OnCrash adds a hook run after the screen is finalized and before the process exits
// Hooks run once, in registration order; a panicking hook does not stop the rest
func OnCrash(fn func(r any)) {
	crashMu.Lock()
	crashHooks = append(crashHooks, fn)
	crashMu.Unlock()
}

// ResetCrashHooks drops every hook registered with OnCrash
func ResetCrashHooks() {
	crashMu.Lock()
	crashHooks = nil
	crashMu.Unlock()
}

// HandleCrash finalizes the registered screen, prints r with a stack trace, runs crash hooks and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	hooks := crashHooks
	crashHooks = nil
	crashMu.Unlock()

	// Fini after a panic inside tcell may panic again; the report still has to print
	if s != nil {
		func() {
			defer func() { _ = recover() }()
			s.Fini()
		}()
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	if f, ok := crashOut.(*os.File); ok {
		_ = f.Sync()
	}

	for _, fn := range hooks {
		func() {
			defer func() { _ = recover() }()
			fn(r)
		}()
	}

	crashExit(1)
}

// Go runs fn in a new goroutine with crash handling
// Use this instead of the go keyword for anything running while the screen is up
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

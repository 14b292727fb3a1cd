package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finisher restores the terminal; tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

var crashScreen atomic.Pointer[Finisher]

// SetCrashScreen registers the screen to restore before a crash report
func SetCrashScreen(s Finisher) {
	if s == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&s)
}

// HandleCrash restores the terminal, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if s := crashScreen.Load(); s != nil {
		(*s).Fini()
	}
	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use instead of the go keyword so the terminal is restored on crash
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

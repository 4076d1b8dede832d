package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// CrashHandler receives a recovered panic value and its stack
type CrashHandler func(r any, stack []byte)

var crashHandler atomic.Pointer[CrashHandler]

// SetCrashHandler installs the handler used by Go and HandleCrash
// Passing nil restores the default stderr handler
func SetCrashHandler(h CrashHandler) {
	if h == nil {
		crashHandler.Store(nil)
		return
	}
	crashHandler.Store(&h)
}

// HandleCrash routes a recovered panic to the installed handler
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()
	if h := crashHandler.Load(); h != nil {
		(*h)(r, stack)
		return
	}
	fmt.Fprintf(os.Stderr, "\r\nCRASH DETECTED: %v\r\nStack Trace:\r\n%s\r\n", r, stack)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword for long-lived loops
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

// Recover runs fn with panic recovery and reports whether it completed
func Recover(fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			HandleCrash(r)
			ok = false
		}
	}()
	fn()
	return true
}

package cli

import (
	"fmt"
	"io"
	"sync"
)

// consoleNotifier prints dashboard notifications as single lines. Panels
// refresh concurrently, so writes are serialised.
type consoleNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func newConsoleNotifier(w io.Writer) *consoleNotifier {
	return &consoleNotifier{w: w}
}

func (n *consoleNotifier) Success(msg string) { n.print("ok", msg) }

func (n *consoleNotifier) Error(msg string) { n.print("error", msg) }

func (n *consoleNotifier) print(kind, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[%s] %s\n", kind, msg)
}

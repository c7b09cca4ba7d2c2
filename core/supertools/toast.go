package supertools

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Toaster shows transient notifications. Success and Error replace the loading toast with the same id.
type Toaster interface {
	Loading(msg string) (id string)
	Success(id, msg string)
	Error(id, msg string)
}

// ConsoleToaster prints toasts as lines on w.
type ConsoleToaster struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleToaster(w io.Writer) *ConsoleToaster {
	return &ConsoleToaster{w: w}
}

func (t *ConsoleToaster) Loading(msg string) string {
	id := uuid.New().String()[:8]
	t.print(id, "...", msg)
	return id
}

func (t *ConsoleToaster) Success(id, msg string) { t.print(id, "ok ", msg) }
func (t *ConsoleToaster) Error(id, msg string)   { t.print(id, "ERR", msg) }

func (t *ConsoleToaster) print(id, level, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(t.w, "[%s] %s %s\n", id, level, msg)
}

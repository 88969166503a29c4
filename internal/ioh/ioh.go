package ioh

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Handler is the engine's only suspension point (spec section
// 6.2/5): print is buffered, flush atomically drains whatever has
// accumulated (to stdout in production, to a string in tests), and
// readLine blocks for the next input line.
type Handler struct {
	out *bufio.Writer
	buf strings.Builder
	in  *bufio.Scanner
}

// NewHandler wraps the process's stdin/stdout.
func NewHandler() *Handler {
	return NewHandlerFor(os.Stdin, os.Stdout)
}

// NewHandlerFor wraps arbitrary reader/writer, used by tests to drive
// the engine without touching the real terminal.
func NewHandlerFor(r io.Reader, w io.Writer) *Handler {
	h := &Handler{in: bufio.NewScanner(r)}
	h.out = bufio.NewWriter(w)
	return h
}

// Print buffers s; it is not visible to the player until Flush.
func (h *Handler) Print(s string) {
	h.buf.WriteString(s)
}

// Println is Print with a trailing newline, the common case for
// handler prose.
func (h *Handler) Println(s string) {
	h.buf.WriteString(s)
	h.buf.WriteByte('\n')
}

// Flush drains everything buffered since the last Flush, writes it to
// the underlying writer, and returns it as a string so tests can
// assert on exactly what one turn produced.
func (h *Handler) Flush() string {
	out := h.buf.String()
	h.buf.Reset()
	if out != "" {
		_, _ = h.out.WriteString(out)
		_ = h.out.Flush()
	}
	return out
}

// ReadLine returns the next input line, or ("", false) on EOF.
func (h *Handler) ReadLine() (string, bool) {
	if !h.in.Scan() {
		return "", false
	}
	return h.in.Text(), true
}

package ioh_test

import (
	"strings"
	"testing"

	"github.com/mdhenderson/gnusto/internal/ioh"
)

func TestPrintBuffersUntilFlush(t *testing.T) {
	var out strings.Builder
	h := ioh.NewHandlerFor(strings.NewReader(""), &out)

	h.Print("Taken.")
	if out.Len() != 0 {
		t.Fatalf("expected nothing written before Flush")
	}
	if got := h.Flush(); got != "Taken." {
		t.Fatalf("Flush() = %q", got)
	}
	if out.String() != "Taken." {
		t.Fatalf("underlying writer = %q", out.String())
	}
	if got := h.Flush(); got != "" {
		t.Fatalf("second Flush should drain nothing new, got %q", got)
	}
}

func TestReadLineReturnsFalseAtEOF(t *testing.T) {
	h := ioh.NewHandlerFor(strings.NewReader("look\n"), &strings.Builder{})
	line, ok := h.ReadLine()
	if !ok || line != "look" {
		t.Fatalf("got %q, %v", line, ok)
	}
	if _, ok := h.ReadLine(); ok {
		t.Fatalf("expected EOF")
	}
}

package enginelog_test

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/mdhenderson/gnusto/internal/enginelog"
)

func TestPrintfNoOpWhenNotDebug(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	enginelog.New(false).Printf("should not appear: %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestPrintfLogsWhenDebug(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	enginelog.New(true).Printf("fired: %d", 7)
	if buf.Len() == 0 {
		t.Fatalf("expected output, got none")
	}
}

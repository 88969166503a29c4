package enginelog

import "log"

// Logger gates log.Printf behind a debug flag, the same
// closure-over-a-flag idiom as internal/parse's debugp.
type Logger struct {
	debug bool
}

func New(debug bool) Logger { return Logger{debug: debug} }

// Printf logs format/args if the logger is in debug mode; otherwise
// it's a no-op.
func (l Logger) Printf(format string, args ...any) {
	if l.debug {
		log.Printf(format, args...)
	}
}

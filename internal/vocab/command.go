package vocab

import (
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
)

// Command is what the parser hands the engine for a single input
// line (spec section 4.3).
type Command struct {
	Verb           ids.VerbID
	DirectObjects  []values.EntityReference
	IndirectObject *values.EntityReference
	Preposition    string
	Direction      Direction_e
	IsAllCommand   bool
	RawInput       string
}

// DirectObject returns the command's sole direct object, or the zero
// reference and false if there isn't exactly one. Most handlers only
// ever deal with a single direct object; ALL/AND expansion is what
// turns a multi-object command into a sequence of single-object ones
// before a handler ever sees them (spec section 4.5 step 2).
func (c Command) DirectObject() (values.EntityReference, bool) {
	if len(c.DirectObjects) != 1 {
		return values.EntityReference{}, false
	}
	return c.DirectObjects[0], true
}

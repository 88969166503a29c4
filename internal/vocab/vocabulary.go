package vocab

import (
	"sort"

	"github.com/mdhenderson/gnusto/internal/ids"
)

// VerbEntry is one verb family's entry in the vocabulary: its
// canonical ID, the words that resolve to it, and the grammatical
// frames it accepts.
type VerbEntry struct {
	ID       ids.VerbID
	Synonyms []string
	Frames   []Frame_e
}

// Vocabulary is the verb table built from a game blueprint (spec
// section 4.3). The noun/adjective index is derived at parse time
// from live item attributes rather than stored here, since item
// names and synonyms already live on the items themselves.
type Vocabulary struct {
	entries map[ids.VerbID]VerbEntry
	index   map[string]ids.VerbID // synonym word -> canonical verb
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		entries: map[ids.VerbID]VerbEntry{},
		index:   map[string]ids.VerbID{},
	}
}

// AddVerb registers a verb family under the given synonyms. Later
// registrations for an already-claimed synonym win, matching the
// "last handler registered claims the word" behavior a blueprint
// author would expect from declaration order.
func (v *Vocabulary) AddVerb(id ids.VerbID, synonyms []string, frames ...Frame_e) {
	v.entries[id] = VerbEntry{ID: id, Synonyms: append([]string(nil), synonyms...), Frames: append([]Frame_e(nil), frames...)}
	for _, syn := range synonyms {
		v.index[syn] = id
	}
}

// ResolveVerb looks up a word against the synonym index.
func (v *Vocabulary) ResolveVerb(word string) (ids.VerbID, bool) {
	id, ok := v.index[word]
	return id, ok
}

// Entry returns the registered entry for a verb ID.
func (v *Vocabulary) Entry(id ids.VerbID) (VerbEntry, bool) {
	e, ok := v.entries[id]
	return e, ok
}

// SupportsFrame reports whether a verb accepts the given grammatical
// frame.
func (v *Vocabulary) SupportsFrame(id ids.VerbID, frame Frame_e) bool {
	e, ok := v.entries[id]
	if !ok {
		return false
	}
	for _, f := range e.Frames {
		if f == frame {
			return true
		}
	}
	return false
}

// SupportsMultipleObjects reports whether a verb declares multi-object
// support, per spec section 4.3's "legal only if the verb declares
// multi-object support" rule.
func (v *Vocabulary) SupportsMultipleObjects(id ids.VerbID) bool {
	return v.SupportsFrame(id, FrameMultiObject)
}

// Verbs returns every registered verb ID in a stable order, used by
// help text and tests.
func (v *Vocabulary) Verbs() []ids.VerbID {
	out := make([]ids.VerbID, 0, len(v.entries))
	for id := range v.entries {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

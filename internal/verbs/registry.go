package verbs

import (
	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/vocab"
)

// Builtins is every handler the engine registers by default (spec
// section 4.6). A blueprint's own verbs, if any, are registered
// alongside these by the caller.
func Builtins() []action.Handler {
	return []action.Handler{
		Take{}, Drop{},
		Open{}, Close{},
		Lock{}, Unlock{},
		Wear{}, Remove{},
		TurnOn{}, TurnOff{},
		PutIn{}, PutOn{},
		Go{},
		Look{}, Examine{}, Inventory{}, Score{}, Wait{}, Touch{}, Kick{}, Give{},
		Diagnose{},
	}
}

// Register adds every handler in handlers to vocabulary under its
// declared synonyms and frames. The handler's first synonym becomes
// its canonical VerbID.
func Register(vocabulary *vocab.Vocabulary, handlers []action.Handler) map[ids.VerbID]action.Handler {
	byID := make(map[ids.VerbID]action.Handler, len(handlers))
	for _, h := range handlers {
		syns := h.Synonyms()
		if len(syns) == 0 {
			continue
		}
		id := syns[0]
		words := make([]string, len(syns))
		for i, s := range syns {
			words[i] = string(s)
		}
		vocabulary.AddVerb(id, words, h.Syntax()...)
		byID[id] = h
	}
	return byID
}

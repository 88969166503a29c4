package parse

import (
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/scope"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

var rxPunct = regexp.MustCompile(`[^\w\s]+`)

var articles = map[string]bool{"the": true, "a": true, "an": true, "some": true}

var prepositions = map[string]bool{
	"with": true, "in": true, "into": true, "inside": true,
	"on": true, "onto": true, "to": true, "at": true, "from": true, "under": true,
}

var allWords = map[string]bool{"all": true, "everything": true}

// Parse is the pure function spec section 6.1 names: it never prints
// and never mutates state, and the same (input, vocabulary, state)
// always produces the same result.
func Parse(input string, vocabulary *vocab.Vocabulary, state *world.GameState, resolver *scope.Resolver, debugParser bool) (vocab.Command, *ParseError) {
	debugp := func(format string, args ...any) {
		if debugParser {
			log.Printf(format, args...)
		}
	}

	tokens := tokenize(input)
	debugp("parse: %q -> %v\n", input, tokens)
	if len(tokens) == 0 {
		return vocab.Command{}, emptyErr()
	}

	if len(tokens) == 1 {
		if dir, ok := ids.StringToEnum[tokens[0]]; ok {
			return vocab.Command{Verb: ids.VerbID("go"), Direction: dir, RawInput: input}, nil
		}
	}

	verbWord := tokens[0]
	verbID, ok := vocabulary.ResolveVerb(verbWord)
	if !ok {
		return vocab.Command{}, unknownVerbErr(verbWord)
	}
	rest := tokens[1:]

	cmd := vocab.Command{Verb: verbID, RawInput: input}

	if len(rest) == 0 {
		return cmd, nil
	}

	// "go north"/"go in": a single trailing direction word names the
	// exit, not an object, regardless of whether that word also
	// doubles as a preposition (e.g. "in").
	if verbID == ids.VerbID("go") && len(rest) == 1 {
		if dir, ok := ids.StringToEnum[rest[0]]; ok {
			cmd.Direction = dir
			return cmd, nil
		}
	}

	directTokens, preposition, indirectTokens := splitOnPreposition(rest)
	cmd.Preposition = preposition

	if len(directTokens) > 0 {
		directPhrases := splitPhrases(directTokens)
		if len(directPhrases) > 1 && !vocabulary.SupportsMultipleObjects(verbID) {
			return vocab.Command{}, badSyntaxErr("The verb '" + string(verbID) + "' doesn't support multiple objects.")
		}
		visible := resolver.Visible(state)
		for _, phrase := range directPhrases {
			if allWords[strings.Join(phrase, " ")] {
				cmd.IsAllCommand = true
				continue
			}
			refs, perr := resolveNounPhrase(phrase, state, visible)
			if perr != nil {
				return vocab.Command{}, perr
			}
			cmd.DirectObjects = append(cmd.DirectObjects, refs...)
		}
	}

	if len(indirectTokens) > 0 {
		visible := resolver.Visible(state)
		refs, perr := resolveNounPhrase(stripArticles(indirectTokens), state, visible)
		if perr != nil {
			return vocab.Command{}, perr
		}
		if len(refs) > 0 {
			cmd.IndirectObject = &refs[0]
		}
	}

	return cmd, nil
}

func tokenize(input string) []string {
	cleaned := rxPunct.ReplaceAllString(strings.ToLower(strings.TrimSpace(input)), " ")
	return strings.Fields(cleaned)
}

func splitOnPreposition(tokens []string) (direct []string, preposition string, indirect []string) {
	for i, tok := range tokens {
		if prepositions[tok] {
			return tokens[:i], tok, tokens[i+1:]
		}
	}
	return tokens, "", nil
}

// splitPhrases breaks a direct-object token run into one or more noun
// phrases on "and", stripping leading articles. Commas never reach it:
// tokenize has already replaced them with spaces.
func splitPhrases(tokens []string) [][]string {
	var phrases [][]string
	var cur []string
	for _, tok := range tokens {
		if tok == "and" {
			if len(cur) > 0 {
				phrases = append(phrases, stripArticles(cur))
				cur = nil
			}
			continue
		}
		cur = append(cur, tok)
	}
	if len(cur) > 0 {
		phrases = append(phrases, stripArticles(cur))
	}
	return phrases
}

func stripArticles(phrase []string) []string {
	for len(phrase) > 1 && articles[phrase[0]] {
		phrase = phrase[1:]
	}
	return phrase
}

var pronouns = map[string]bool{"it": true, "them": true, "him": true, "her": true}

// resolveNounPhrase resolves one noun phrase (adjectives + a final
// noun, or a pronoun) against the visible set, per spec section 4.2.
func resolveNounPhrase(phrase []string, state *world.GameState, visible []ids.ItemID) ([]values.EntityReference, *ParseError) {
	if len(phrase) == 1 && pronouns[phrase[0]] {
		refs, ok := state.Pronouns[phrase[0]]
		if !ok || len(refs) == 0 {
			return nil, badSyntaxErr("I don't know what you're referring to.")
		}
		if phrase[0] == "them" {
			return refs, nil
		}
		return refs[:1], nil
	}

	noun := phrase[len(phrase)-1]
	adjectives := phrase[:len(phrase)-1]

	var candidates []ids.ItemID
	for _, id := range visible {
		item, ok := state.Item(id)
		if !ok {
			continue
		}
		if !matchesNoun(item, noun) {
			continue
		}
		if !matchesAdjectives(item, adjectives) {
			continue
		}
		candidates = append(candidates, id)
	}

	switch len(candidates) {
	case 0:
		if nounKnownAnywhere(state, noun) {
			return nil, itemNotInScopeErr(noun)
		}
		return nil, unknownNounErr(noun)
	case 1:
		return []values.EntityReference{values.ItemRef(candidates[0])}, nil
	default:
		return nil, ambiguityErr(ambiguityMessage(state, candidates))
	}
}

func matchesNoun(it *world.Item, noun string) bool {
	if strings.EqualFold(it.Name(), noun) {
		return true
	}
	for _, syn := range it.Synonyms() {
		if strings.EqualFold(syn, noun) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(it.Name()), noun)
}

func matchesAdjectives(it *world.Item, adjectives []string) bool {
	if len(adjectives) == 0 {
		return true
	}
	have := map[string]bool{}
	for _, a := range it.Adjectives() {
		have[strings.ToLower(a)] = true
	}
	for _, want := range adjectives {
		if !have[want] {
			return false
		}
	}
	return true
}

func nounKnownAnywhere(state *world.GameState, noun string) bool {
	for _, it := range state.Items {
		if matchesNoun(it, noun) {
			return true
		}
	}
	return false
}

// ambiguityMessage builds "Which do you mean: the X or the Y?",
// Oxford-comma style on 3+ candidates (spec scenario 10).
func ambiguityMessage(state *world.GameState, candidates []ids.ItemID) string {
	names := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if it, ok := state.Item(id); ok {
			names = append(names, it.Name())
		}
	}
	sort.Strings(names)
	return "Which do you mean: the " + joinOxford(names) + "?"
}

func joinOxford(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or the " + names[1]
	default:
		out := names[0]
		for _, n := range names[1 : len(names)-1] {
			out += ", the " + n
		}
		out += ", or the " + names[len(names)-1]
		return out
	}
}

package vocab_test

import (
	"encoding/json"
	"testing"

	"github.com/mdhenderson/gnusto/internal/vocab"
)

func TestDirectionRoundTrip(t *testing.T) {
	for _, d := range vocab.Directions {
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatal(err)
		}
		var got vocab.Direction_e
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatal(err)
		}
		if got != d {
			t.Fatalf("round trip mismatch: %v -> %s -> %v", d, data, got)
		}
	}
}

func TestDirectionAsMapKey(t *testing.T) {
	m := map[vocab.Direction_e]string{vocab.North: "n"}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	var got map[vocab.Direction_e]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got[vocab.North] != "n" {
		t.Fatalf("got %+v", got)
	}
}

func TestVocabularyMultiObjectSupport(t *testing.T) {
	v := vocab.NewVocabulary()
	v.AddVerb("TAKE", []string{"take", "get"}, vocab.FrameDirectOnly, vocab.FrameMultiObject)
	v.AddVerb("EXAMINE", []string{"examine", "x"}, vocab.FrameDirectOnly)

	if id, ok := v.ResolveVerb("get"); !ok || id != "TAKE" {
		t.Fatalf("expected 'get' to resolve to TAKE, got %v %v", id, ok)
	}
	if !v.SupportsMultipleObjects("TAKE") {
		t.Fatalf("expected TAKE to support multiple objects")
	}
	if v.SupportsMultipleObjects("EXAMINE") {
		t.Fatalf("expected EXAMINE to not support multiple objects")
	}
	if _, ok := v.ResolveVerb("frobnicate"); ok {
		t.Fatalf("expected unknown word to not resolve")
	}
}

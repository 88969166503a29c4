package parse_test

import (
	"testing"

	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/parse"
	"github.com/mdhenderson/gnusto/internal/scope"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

func testVocab() *vocab.Vocabulary {
	v := vocab.NewVocabulary()
	v.AddVerb("go", []string{"go", "walk"}, vocab.FrameDirectOnly)
	v.AddVerb("take", []string{"take", "get"}, vocab.FrameDirectOnly, vocab.FrameMultiObject)
	v.AddVerb("unlock", []string{"unlock"}, vocab.FrameDirectPrepIndirect)
	return v
}

func testState() *world.GameState {
	s := world.NewGameState()
	s.Locations["foyer"] = world.NewLocation("foyer")
	s.Locations["foyer"].Attributes[world.AttrInherentlyLit] = values.BoolValue(true)
	s.Player.CurrentLocation = "foyer"

	lamp := world.NewItem("lamp", values.ParentOfLocation("foyer"))
	lamp.Attributes[world.AttrName] = values.StringValue("brass lamp")
	lamp.Attributes[world.AttrIsTakable] = values.BoolValue(true)
	lamp.Attributes[world.AttrAdjectives] = values.StringSetValue([]string{"brass"})
	s.Items["lamp"] = lamp

	blueBall := world.NewItem("blueBall", values.ParentOfLocation("foyer"))
	blueBall.Attributes[world.AttrName] = values.StringValue("ball")
	blueBall.Attributes[world.AttrAdjectives] = values.StringSetValue([]string{"blue"})
	s.Items["blueBall"] = blueBall

	redBall := world.NewItem("redBall", values.ParentOfLocation("foyer"))
	redBall.Attributes[world.AttrName] = values.StringValue("ball")
	redBall.Attributes[world.AttrAdjectives] = values.StringSetValue([]string{"red"})
	s.Items["redBall"] = redBall

	return s
}

func TestParseBareDirection(t *testing.T) {
	s := testState()
	cmd, perr := parse.Parse("north", testVocab(), s, scope.NewResolver(), false)
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if cmd.Verb != "go" || cmd.Direction != ids.North {
		t.Fatalf("got %+v", cmd)
	}
}

func TestParseTakeResolvesByName(t *testing.T) {
	s := testState()
	cmd, perr := parse.Parse("take the brass lamp", testVocab(), s, scope.NewResolver(), false)
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	do, ok := cmd.DirectObject()
	if !ok {
		t.Fatalf("expected exactly one direct object, got %+v", cmd)
	}
	if id, isItem := do.Item(); !isItem || id != "lamp" {
		t.Fatalf("got %+v", do)
	}
}

func TestParseUnknownVerb(t *testing.T) {
	s := testState()
	_, perr := parse.Parse("frobnicate lamp", testVocab(), s, scope.NewResolver(), false)
	if perr == nil || perr.Kind != parse.UnknownVerb {
		t.Fatalf("expected UnknownVerb, got %v", perr)
	}
}

func TestParseAmbiguousNounWithoutAdjective(t *testing.T) {
	s := testState()
	_, perr := parse.Parse("take ball", testVocab(), s, scope.NewResolver(), false)
	if perr == nil || perr.Kind != parse.Ambiguity {
		t.Fatalf("expected Ambiguity, got %v", perr)
	}
}

func TestParseAdjectiveDisambiguates(t *testing.T) {
	s := testState()
	cmd, perr := parse.Parse("take blue ball", testVocab(), s, scope.NewResolver(), false)
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	do, _ := cmd.DirectObject()
	if id, _ := do.Item(); id != "blueBall" {
		t.Fatalf("got %+v", do)
	}
}

func TestParseMultiObjectRejectedWhenUnsupported(t *testing.T) {
	s := testState()
	_, perr := parse.Parse("go lamp and ball", testVocab(), s, scope.NewResolver(), false)
	if perr == nil || perr.Kind != parse.BadSyntax {
		t.Fatalf("expected BadSyntax for multi-object on a non-multi verb, got %v", perr)
	}
}

func TestParseUnlockWithIndirectObject(t *testing.T) {
	s := testState()
	key := world.NewItem("key", values.ParentOfPlayer())
	key.Attributes[world.AttrName] = values.StringValue("key")
	s.Items["key"] = key

	cmd, perr := parse.Parse("unlock lamp with key", testVocab(), s, scope.NewResolver(), false)
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if cmd.Preposition != "with" || cmd.IndirectObject == nil {
		t.Fatalf("got %+v", cmd)
	}
	if id, _ := cmd.IndirectObject.Item(); id != "key" {
		t.Fatalf("got %+v", cmd.IndirectObject)
	}
}

func TestParseEmptyInput(t *testing.T) {
	s := testState()
	_, perr := parse.Parse("   ", testVocab(), s, scope.NewResolver(), false)
	if perr == nil || perr.Kind != parse.Empty {
		t.Fatalf("expected Empty, got %v", perr)
	}
}

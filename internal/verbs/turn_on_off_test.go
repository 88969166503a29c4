package verbs_test

import (
	"strings"
	"testing"

	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/ioh"
	"github.com/mdhenderson/gnusto/internal/scope"
	"github.com/mdhenderson/gnusto/internal/values"
	"github.com/mdhenderson/gnusto/internal/verbs"
	"github.com/mdhenderson/gnusto/internal/vocab"
	"github.com/mdhenderson/gnusto/internal/world"
)

// darkRoomState builds a foyer whose only light source is a lit lamp,
// used to exercise TurnOff's grue-darkness-warning transition.
func darkRoomState() *world.GameState {
	s := world.NewGameState()
	foyer := world.NewLocation("foyer")
	foyer.Attributes[world.AttrName] = values.StringValue("Foyer")
	foyer.Attributes[world.AttrInherentlyLit] = values.BoolValue(false)
	s.Locations["foyer"] = foyer
	s.Player.CurrentLocation = "foyer"

	lamp := world.NewItem("lamp", values.ParentOfLocation("foyer"))
	lamp.Attributes[world.AttrName] = values.StringValue("brass lamp")
	lamp.Attributes[world.AttrIsDevice] = values.BoolValue(true)
	lamp.Attributes[world.AttrIsLightSource] = values.BoolValue(true)
	lamp.Attributes[world.AttrIsOn] = values.BoolValue(true)
	s.Items["lamp"] = lamp

	radio := world.NewItem("radio", values.ParentOfLocation("foyer"))
	radio.Attributes[world.AttrName] = values.StringValue("radio")
	radio.Attributes[world.AttrIsDevice] = values.BoolValue(true)
	radio.Attributes[world.AttrIsOn] = values.BoolValue(true)
	s.Items["radio"] = radio

	return s
}

func turnOffCtx(s *world.GameState, out *strings.Builder, direct ids.ItemID) *action.Context {
	cmd := vocab.Command{Verb: "turn-off", DirectObjects: []values.EntityReference{values.ItemRef(direct)}}
	return action.NewContext(cmd, s, scope.NewResolver(), ioh.NewHandlerFor(strings.NewReader(""), out))
}

func TestTurnOffLastLightSourceWarnsOfDarkness(t *testing.T) {
	s := darkRoomState()
	var out strings.Builder
	ctx := turnOffCtx(s, &out, "lamp")

	if resp := (verbs.TurnOff{}).Validate(ctx); resp != nil {
		t.Fatalf("validate: %+v", resp)
	}
	result, resp := (verbs.TurnOff{}).Process(ctx)
	if resp != nil {
		t.Fatalf("process: %+v", resp)
	}
	if err := s.Apply(result.Changes); err != nil {
		t.Fatalf("apply: %v", err)
	}

	(verbs.TurnOff{}).PostProcess(ctx, result)

	if !strings.Contains(out.String(), "pitch black") {
		t.Fatalf("expected darkness warning, got %q", out.String())
	}
}

func TestTurnOffNonLightDeviceDoesNotWarn(t *testing.T) {
	s := darkRoomState()
	s.Locations["foyer"].Attributes[world.AttrInherentlyLit] = values.BoolValue(true)
	var out strings.Builder
	ctx := turnOffCtx(s, &out, "radio")

	if resp := (verbs.TurnOff{}).Validate(ctx); resp != nil {
		t.Fatalf("validate: %+v", resp)
	}
	result, resp := (verbs.TurnOff{}).Process(ctx)
	if resp != nil {
		t.Fatalf("process: %+v", resp)
	}
	if err := s.Apply(result.Changes); err != nil {
		t.Fatalf("apply: %v", err)
	}

	(verbs.TurnOff{}).PostProcess(ctx, result)

	if strings.Contains(out.String(), "pitch black") {
		t.Fatalf("did not expect darkness warning, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Done.") {
		t.Fatalf("expected the normal confirmation message, got %q", out.String())
	}
}

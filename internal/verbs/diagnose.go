package verbs

import (
	"fmt"

	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/vocab"
)

// Diagnose reports the player's health, reading playerHealth the same
// way Score reads playerScore.
type Diagnose struct{}

func (Diagnose) Synonyms() []ids.VerbID  { return []ids.VerbID{"diagnose", "health"} }
func (Diagnose) Syntax() []vocab.Frame_e { return []vocab.Frame_e{vocab.FrameIntransitive} }
func (Diagnose) RequiresLight() bool     { return false }

func (Diagnose) Validate(ctx *action.Context) *action.ActionResponse { return nil }

func (Diagnose) Process(ctx *action.Context) (action.ActionResult, *action.ActionResponse) {
	h := ctx.State.Player.Health
	var msg string
	switch {
	case h >= 100:
		msg = "You are in perfect health."
	case h >= 75:
		msg = "You have some minor cuts and bruises."
	case h >= 50:
		msg = "You are hurt, and should seek help soon."
	case h >= 25:
		msg = "You are badly wounded."
	default:
		msg = "You are at death's door."
	}
	return action.ActionResult{Message: fmt.Sprintf("%s (%d%% health)", msg, h)}, nil
}

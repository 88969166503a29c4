package hooks_test

import (
	"testing"

	"github.com/mdhenderson/gnusto/internal/action"
	"github.com/mdhenderson/gnusto/internal/hooks"
)

func TestRegistryLookupMiss(t *testing.T) {
	r := hooks.NewRegistry()
	if _, ok := r.Location("foyer"); ok {
		t.Fatalf("expected no handler registered")
	}
}

func TestRegistryLookupHit(t *testing.T) {
	r := hooks.NewRegistry()
	r.Locations["foyer"] = func(ctx *action.Context, event hooks.LocationEvent) (*action.ActionResult, error) {
		return nil, nil
	}
	h, ok := r.Location("foyer")
	if !ok || h == nil {
		t.Fatalf("expected a registered handler")
	}
	result, err := h(nil, hooks.LocationEvent{Kind: hooks.LocationOnEnter})
	if err != nil || result != nil {
		t.Fatalf("expected (nil, nil) meaning default processing")
	}
}

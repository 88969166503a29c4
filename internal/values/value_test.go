package values_test

import (
	"encoding/json"
	"testing"

	"github.com/go-test/deep"

	"github.com/mdhenderson/gnusto/internal/ids"
	"github.com/mdhenderson/gnusto/internal/values"
)

func TestItemIDSetValueIsOrderIndependent(t *testing.T) {
	a := values.ItemIDSetValue([]ids.ItemID{"lamp", "key"})
	b := values.ItemIDSetValue([]ids.ItemID{"key", "lamp"})
	if !a.Equal(b) {
		t.Fatalf("expected sets built from different insertion orders to be equal")
	}
}

func TestStateValueRoundTrip(t *testing.T) {
	cases := []values.StateValue{
		values.BoolValue(true),
		values.IntValue(42),
		values.StringValue("brass lamp"),
		values.ItemIDValue("lamp"),
		values.LocationIDValue("foyer"),
		values.ItemIDSetValue([]ids.ItemID{"lamp", "key"}),
		values.StringSetValue([]string{"brass", "shiny"}),
		values.EntityRefSetValue([]values.EntityReference{values.ItemRef("lamp"), values.PlayerRef()}),
		values.ParentEntityValue(values.ParentOfPlayer()),
	}
	for _, v := range cases {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %v: %v", v, err)
		}
		var got values.StateValue
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if !v.Equal(got) {
			t.Fatalf("round trip mismatch: want %v, got %v (json=%s)", v, got, data)
		}
	}
}

func TestOpaqueValueTypeChecked(t *testing.T) {
	type payload struct{ Score int }
	v, err := values.EncodeOpaque("score.v1", payload{Score: 7})
	if err != nil {
		t.Fatal(err)
	}
	var out payload
	if err := v.DecodeOpaque("score.v1", &out); err != nil {
		t.Fatalf("expected decode to succeed: %v", err)
	}
	if out.Score != 7 {
		t.Fatalf("got %+v", out)
	}
	if err := v.DecodeOpaque("wrong.type", &out); err == nil {
		t.Fatalf("expected decode with wrong type name to fail")
	}
}

func TestEntityReferenceRoundTrip(t *testing.T) {
	refs := []values.EntityReference{
		values.ItemRef("lamp"), values.LocationRef("foyer"), values.PlayerRef(),
		values.GlobalRef("lampTurns"), values.NowhereRef(),
	}
	for _, r := range refs {
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		var got values.EntityReference
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatal(err)
		}
		if diff := deep.Equal(r, got); diff != nil {
			t.Errorf("round trip mismatch for %v: %v", r, diff)
		}
	}
}

func TestAttributeKeyEquality(t *testing.T) {
	a := values.ItemAttribute("isOpen")
	b := values.ItemAttribute("isOpen")
	c := values.ItemAttribute("isLocked")
	if !a.Equal(b) {
		t.Fatalf("expected equal attribute keys")
	}
	if a.Equal(c) {
		t.Fatalf("expected different attribute keys to differ")
	}
}

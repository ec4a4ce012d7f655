package utils

import (
	"testing"

	"github.com/elliotchance/orderedmap/v2"
)

func TestOrderedMapToString(t *testing.T) {
	m := orderedmap.NewOrderedMap[string, any]()
	if s := OrderedMapToString(*m); s != "[]" {
		t.Fatalf("expected [], got %q", s)
	}
	m.Set("speed", 3.2)
	m.Set("locked", false)
	m.Set("channel", "player")
	if s := OrderedMapToString(*m); s != "[speed=3.2 locked=false channel=player]" {
		t.Fatalf("unexpected string %q", s)
	}
}

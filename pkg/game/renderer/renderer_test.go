package renderer

import (
	"strings"
	"testing"
)

func TestFormatString_ResolvesMarkup(t *testing.T) {
	Init(true) // colors off so output is comparable as plain text

	cases := []struct {
		name string
		in   string
		args []any
		want string
	}{
		{"item", "You pick up ITEM{Shortsword}.", nil, "You pick up Shortsword."},
		{"enemy", "ENEMY{Goblin} snarls.", nil, "Goblin snarls."},
		{"room", "You stand in ROOM{Dusty Chamber}.", nil, "You stand in Dusty Chamber."},
		{"gold", "You loot GOLD{12 gold}.", nil, "You loot 12 gold."},
		{"action", "Press ACTION{north} to move.", nil, "Press north to move."},
		{"args", "You hit the ENEMY{%s} for %d damage.", []any{"Goblin", 7}, "You hit the Goblin for 7 damage."},
		{"plain", "Nothing to resolve here.", nil, "Nothing to resolve here."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatString(tc.in, tc.args...)
			if got != tc.want {
				t.Errorf("FormatString(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatString_UnknownFunctionIsLoud(t *testing.T) {
	Init(true)

	got := FormatString("BOGUS{whatever}")
	if !strings.Contains(got, "ERROR") {
		t.Errorf("expected a loud error for unknown markup, got %q", got)
	}
}

func TestFormatString_RoomNamesWithPunctuation(t *testing.T) {
	Init(true)

	got := FormatString("ROOM{Hermit's Corner} and ROOM{Bone-Strewn Den}")
	if got != "Hermit's Corner and Bone-Strewn Den" {
		t.Errorf("markup should accept apostrophes and hyphens, got %q", got)
	}
}

package icons

import (
	"strings"
	"testing"
)

func TestLucideSpriteDefinesEveryIcon(t *testing.T) {
	t.Parallel()

	sprite := LucideSprite()
	for _, name := range []Name{MessageCircle, ArrowRight, CircleCheck, Smartphone, Users, BarChart3} {
		if !Known(name) {
			t.Fatalf("Known(%q) = false", name)
		}
		if !strings.Contains(sprite, `id="`+LucideSymbolID(name)+`"`) {
			t.Fatalf("sprite missing symbol for %q", name)
		}
	}
	if got := strings.Count(sprite, "<symbol "); got != len(Names()) {
		t.Fatalf("symbol count = %d, want %d", got, len(Names()))
	}
}

func TestLucideSymbolID(t *testing.T) {
	t.Parallel()

	if got := LucideSymbolID(Users); got != "lucide-users" {
		t.Fatalf("LucideSymbolID() = %q, want %q", got, "lucide-users")
	}
	if Known("sparkle") {
		t.Fatal("Known(sparkle) = true, want false")
	}
}

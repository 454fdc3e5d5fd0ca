package icons

import (
	"fmt"
	"sort"
	"strings"
)

// Name identifies one Lucide icon.
type Name string

const (
	MessageCircle Name = "message-circle"
	ArrowRight    Name = "arrow-right"
	CircleCheck   Name = "circle-check"
	Smartphone    Name = "smartphone"
	Users         Name = "users"
	BarChart3     Name = "bar-chart-3"
)

const lucideSymbolPrefix = "lucide-"

// Path data from lucide.dev (ISC license), 24x24 viewBox, stroke based.
var lucideShapes = map[Name]string{
	MessageCircle: `<path d="M7.9 20A9 9 0 1 0 4 16.1L2 22Z"/>`,
	ArrowRight:    `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	CircleCheck:   `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>`,
	Smartphone:    `<rect width="14" height="20" x="5" y="2" rx="2" ry="2"/><path d="M12 18h.01"/>`,
	Users:         `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	BarChart3:     `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`,
}

var lucideSprite = buildSprite()

// Known reports whether name has a sprite symbol.
func Known(name Name) bool {
	_, ok := lucideShapes[name]
	return ok
}

// Names returns every icon in the sprite, sorted.
func Names() []Name {
	out := make([]Name, 0, len(lucideShapes))
	for name := range lucideShapes {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name Name) string {
	return lucideSymbolPrefix + string(name)
}

// LucideSprite returns the SVG sprite markup for every known icon.
func LucideSprite() string {
	return lucideSprite
}

func buildSprite() string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none" aria-hidden="true">`)
	for _, name := range Names() {
		fmt.Fprintf(&b,
			`<symbol id="%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">%s</symbol>`,
			LucideSymbolID(name),
			lucideShapes[name],
		)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

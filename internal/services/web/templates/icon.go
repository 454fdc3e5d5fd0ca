package templates

import (
	"strings"

	"github.com/wacrm/wacrm/internal/platform/icons"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Icon references one symbol of the inline Lucide sprite.
func Icon(name icons.Name, class string) g.Node {
	classes := "icon"
	if extra := strings.TrimSpace(class); extra != "" {
		classes += " " + extra
	}
	return g.El("svg",
		html.Class(classes),
		g.Attr("viewBox", "0 0 24 24"),
		html.Aria("hidden", "true"),
		g.Attr("focusable", "false"),
		g.El("use", html.Href("#"+icons.LucideSymbolID(name))),
	)
}

func iconSprite() g.Node {
	return g.Raw(icons.LucideSprite())
}

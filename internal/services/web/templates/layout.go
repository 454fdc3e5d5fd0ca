package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Auth state markers carried on the page body.
const (
	AuthStateAnonymous = "anonymous"
	AuthStateLoading   = "loading"
)

// StylesheetPath is the embedded stylesheet served by the web service.
const StylesheetPath = "/static/css/landing.css"

// PageContext provides shared layout context for public pages.
type PageContext struct {
	Lang            string
	Title           string
	MetaDescription string
	AuthState       string
}

// PublicLayout renders the document shell around the templ children in ctx.
func PublicLayout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return publicLayout(page, children(ctx)).Render(w)
	})
}

func publicLayout(page PageContext, body g.Node) g.Node {
	lang := strings.TrimSpace(page.Lang)
	if lang == "" {
		lang = "pt-BR"
	}
	authState := strings.TrimSpace(page.AuthState)
	if authState == "" {
		authState = AuthStateAnonymous
	}
	return html.Doctype(
		html.HTML(
			html.Lang(lang),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(page.Title)),
				g.If(strings.TrimSpace(page.MetaDescription) != "",
					html.Meta(html.Name("description"), html.Content(page.MetaDescription)),
				),
				html.Link(html.Rel("stylesheet"), html.Href(StylesheetPath)),
			),
			html.Body(
				html.Class("page"),
				html.Data("auth-state", authState),
				iconSprite(),
				body,
			),
		),
	)
}

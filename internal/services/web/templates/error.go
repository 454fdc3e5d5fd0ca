package templates

import (
	"github.com/a-h/templ"
	"github.com/wacrm/wacrm/internal/platform/icons"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ErrorView carries the copy of a public error page.
type ErrorView struct {
	Brand      string
	StatusCode int
	Title      string
	Message    string
	HomeLabel  string
	HomeURL    string
}

// ErrorPage renders a public error body with a link back home.
func ErrorPage(view ErrorView) templ.Component {
	return Component(html.Div(
		html.Class("landing error-page"),
		html.Header(
			html.Class("container site-header"),
			html.Nav(html.Class("site-nav"), brandMark(view.Brand)),
		),
		html.Main(
			html.Section(
				html.Class("container hero"),
				html.Div(
					html.Class("hero-inner"),
					html.P(html.Class("error-code"), g.Textf("%d", view.StatusCode)),
					html.H1(html.Class("hero-title"), g.Text(view.Title)),
					html.P(html.Class("hero-lead"), g.Text(view.Message)),
					Button(ButtonProps{Variant: ButtonOutline, Size: ButtonSizeLarge, Href: view.HomeURL, Action: "error-home"},
						Icon(icons.ArrowRight, "icon-md"),
						g.Text(view.HomeLabel),
					),
				),
			),
		),
	))
}

package templates

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/wacrm/wacrm/internal/platform/icons"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// FeatureCard is one rendered entry of the features grid.
type FeatureCard struct {
	Icon        icons.Name
	Title       string
	Description string
	DelayMS     int
}

// LanguageLink is one entry of the footer language switcher.
type LanguageLink struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// LandingView carries every string and link the landing page renders.
type LandingView struct {
	Brand              string
	HeaderSignIn       string
	HeaderStartFree    string
	HeroBadge          string
	HeroTitle          string
	HeroTitleHighlight string
	HeroLead           string
	HeroStartNow       string
	HeroHaveAccount    string
	FeaturesHeading    string
	Features           []FeatureCard
	CTAHeading         string
	CTALead            string
	CTAButton          string
	FooterRights       string
	LanguageLabel      string
	Languages          []LanguageLink
	SignInURL          string
	SignUpURL          string
}

// LandingPage renders the marketing page body.
func LandingPage(view LandingView) templ.Component {
	return Component(landingPage(view))
}

func landingPage(view LandingView) g.Node {
	return html.Div(
		html.Class("landing"),
		landingHeader(view),
		html.Main(
			landingHero(view),
			landingFeatures(view),
			landingCTA(view),
		),
		landingFooter(view),
	)
}

func brandMark(brand string) g.Node {
	return html.Div(
		html.Class("brand"),
		html.Div(
			html.Class("brand-badge"),
			Icon(icons.MessageCircle, "icon-lg"),
		),
		html.Span(html.Class("brand-name"), g.Text(brand)),
	)
}

func landingHeader(view LandingView) g.Node {
	return html.Header(
		html.Class("container site-header"),
		html.Nav(
			html.Class("site-nav"),
			brandMark(view.Brand),
			html.Div(
				html.Class("site-nav-actions"),
				Button(ButtonProps{Variant: ButtonGhost, Href: view.SignInURL, Action: "header-sign-in"},
					g.Text(view.HeaderSignIn),
				),
				Button(ButtonProps{Variant: ButtonGradient, Href: view.SignUpURL, Action: "header-start-free"},
					g.Text(view.HeaderStartFree),
				),
			),
		),
	)
}

func landingHero(view LandingView) g.Node {
	return html.Section(
		html.Class("container hero"),
		html.Div(
			html.Class("hero-inner animate-fade-in"),
			html.Div(
				html.Class("hero-badge"),
				Icon(icons.CircleCheck, "icon-sm"),
				g.Text(view.HeroBadge),
			),
			html.H1(
				html.Class("hero-title"),
				g.Text(view.HeroTitle+" "),
				html.Span(html.Class("gradient-text"), g.Text(view.HeroTitleHighlight)),
			),
			html.P(html.Class("hero-lead"), g.Text(view.HeroLead)),
			html.Div(
				html.Class("hero-actions"),
				Button(ButtonProps{Variant: ButtonGradient, Size: ButtonSizeXL, Href: view.SignUpURL, Class: "w-full sm-w-auto", Action: "hero-start-now"},
					g.Text(view.HeroStartNow),
					Icon(icons.ArrowRight, "icon-md ml-2"),
				),
				Button(ButtonProps{Variant: ButtonOutline, Size: ButtonSizeXL, Href: view.SignInURL, Class: "w-full sm-w-auto", Action: "hero-have-account"},
					g.Text(view.HeroHaveAccount),
				),
			),
		),
	)
}

func landingFeatures(view LandingView) g.Node {
	return html.Section(
		html.Class("container features"),
		html.H2(html.Class("section-heading"), g.Text(view.FeaturesHeading)),
		html.Div(
			html.Class("feature-grid"),
			g.Map(view.Features, featureCard),
		),
	)
}

func featureCard(card FeatureCard) g.Node {
	return html.Div(
		html.Class("feature-card animate-slide-up"),
		html.Style(fmt.Sprintf("animation-delay: %dms", card.DelayMS)),
		html.Div(
			html.Class("feature-icon"),
			Icon(card.Icon, "icon-lg"),
		),
		html.H3(html.Class("feature-title"), g.Text(card.Title)),
		html.P(html.Class("feature-description"), g.Text(card.Description)),
	)
}

func landingCTA(view LandingView) g.Node {
	return html.Section(
		html.Class("container cta"),
		html.Div(
			html.Class("cta-banner"),
			html.H2(html.Class("cta-heading"), g.Text(view.CTAHeading)),
			html.P(html.Class("cta-lead"), g.Text(view.CTALead)),
			Button(ButtonProps{Size: ButtonSizeXL, Href: view.SignUpURL, Class: "btn-inverted", Action: "cta-create-account"},
				g.Text(view.CTAButton),
				Icon(icons.ArrowRight, "icon-md ml-2"),
			),
		),
	)
}

func landingFooter(view LandingView) g.Node {
	return html.Footer(
		html.Class("container site-footer"),
		html.Div(
			html.Class("site-footer-inner"),
			html.Div(
				html.Class("brand brand-small"),
				Icon(icons.MessageCircle, "icon-md text-primary"),
				html.Span(html.Class("brand-name"), g.Text(view.Brand)),
			),
			html.P(html.Class("site-footer-rights"), g.Text(view.FooterRights)),
			languageSwitcher(view.LanguageLabel, view.Languages),
		),
	)
}

func languageSwitcher(label string, languages []LanguageLink) g.Node {
	if len(languages) == 0 {
		return nil
	}
	return html.Nav(
		html.Class("language-switcher"),
		html.Aria("label", label),
		g.Map(languages, func(link LanguageLink) g.Node {
			return html.A(
				html.Href(link.URL),
				html.Lang(link.Tag),
				html.Class("language-link"),
				g.If(link.Active, html.Aria("current", "true")),
				g.Text(link.Label),
			)
		}),
	)
}

package landing

import (
	"github.com/wacrm/wacrm/internal/platform/icons"
	webi18n "github.com/wacrm/wacrm/internal/services/web/platform/i18n"
	"github.com/wacrm/wacrm/internal/services/web/routepath"
	webtemplates "github.com/wacrm/wacrm/internal/services/web/templates"
	"golang.org/x/text/language"
)

// featureDelayStepMS staggers the card entrance animation.
const featureDelayStepMS = 100

type feature struct {
	icon           icons.Name
	titleKey       string
	title          string
	descriptionKey string
	description    string
}

type service struct{}

func newService() service {
	return service{}
}

// features returns a fresh copy of the product feature list on every call.
func (service) features() []feature {
	return []feature{
		{
			icon:           icons.Smartphone,
			titleKey:       "landing.feature.qr.title",
			title:          "Conexão via QR Code",
			descriptionKey: "landing.feature.qr.description",
			description:    "Conecte seu WhatsApp em segundos escaneando o QR Code",
		},
		{
			icon:           icons.Users,
			titleKey:       "landing.feature.contacts.title",
			title:          "Gestão de Contatos",
			descriptionKey: "landing.feature.contacts.description",
			description:    "Organize e gerencie todos os seus contatos em um só lugar",
		},
		{
			icon:           icons.MessageCircle,
			titleKey:       "landing.feature.messages.title",
			title:          "Mensagens em Tempo Real",
			descriptionKey: "landing.feature.messages.description",
			description:    "Envie e receba mensagens diretamente do seu CRM",
		},
		{
			icon:           icons.BarChart3,
			titleKey:       "landing.feature.reports.title",
			title:          "Relatórios Detalhados",
			descriptionKey: "landing.feature.reports.description",
			description:    "Acompanhe métricas e insights das suas conversas",
		},
	}
}

func (s service) featureCards(loc webi18n.Localizer) []webtemplates.FeatureCard {
	features := s.features()
	cards := make([]webtemplates.FeatureCard, 0, len(features))
	for idx, f := range features {
		cards = append(cards, webtemplates.FeatureCard{
			Icon:        f.icon,
			Title:       webi18n.Text(loc, f.titleKey, f.title),
			Description: webi18n.Text(loc, f.descriptionKey, f.description),
			DelayMS:     idx * featureDelayStepMS,
		})
	}
	return cards
}

func (s service) landingView(tag language.Tag, path string, rawQuery string) (webi18n.LandingCopy, webtemplates.LandingView) {
	loc := webi18n.Printer(tag)
	text := webi18n.Landing(tag)
	options := webi18n.LanguageOptions(loc, tag, path, rawQuery)
	languages := make([]webtemplates.LanguageLink, 0, len(options))
	for _, option := range options {
		languages = append(languages, webtemplates.LanguageLink{
			Tag:    option.Tag,
			Label:  option.Label,
			URL:    option.URL,
			Active: option.Active,
		})
	}
	return text, webtemplates.LandingView{
		Brand:              text.Brand,
		HeaderSignIn:       text.HeaderSignIn,
		HeaderStartFree:    text.HeaderStartFree,
		HeroBadge:          text.HeroBadge,
		HeroTitle:          text.HeroTitle,
		HeroTitleHighlight: text.HeroHighlight,
		HeroLead:           text.HeroLead,
		HeroStartNow:       text.HeroStartNow,
		HeroHaveAccount:    text.HeroHaveAccount,
		FeaturesHeading:    text.FeaturesHeading,
		Features:           s.featureCards(loc),
		CTAHeading:         text.CTAHeading,
		CTALead:            text.CTALead,
		CTAButton:          text.CTAButton,
		FooterRights:       text.FooterRights,
		LanguageLabel:      text.LanguageLabel,
		Languages:          languages,
		SignInURL:          routepath.Auth,
		SignUpURL:          routepath.AuthWithMode(routepath.ModeSignup),
	}
}

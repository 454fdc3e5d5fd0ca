package i18n

import (
	"golang.org/x/text/language"
)

// LandingCopy holds the translatable copy of the marketing landing page.
type LandingCopy struct {
	Lang            string
	Brand           string
	MetaTitle       string
	MetaDescription string
	HeaderSignIn    string
	HeaderStartFree string
	HeroBadge       string
	HeroTitle       string
	HeroHighlight   string
	HeroLead        string
	HeroStartNow    string
	HeroHaveAccount string
	FeaturesHeading string
	CTAHeading      string
	CTALead         string
	CTAButton       string
	FooterRights    string
	LanguageLabel   string
}

// ErrorCopy holds the copy of a public error page.
type ErrorCopy struct {
	Lang     string
	Brand    string
	Title    string
	Message  string
	HomeLink string
}

// Landing returns localized landing copy for the provided language tag.
func Landing(tag language.Tag) LandingCopy {
	loc := Printer(tag)
	return LandingCopy{
		Lang:            tag.String(),
		Brand:           Text(loc, "core.brand", "WhatsApp CRM"),
		MetaTitle:       Text(loc, "landing.meta.title", "WhatsApp CRM | Gerencie seu WhatsApp com inteligência"),
		MetaDescription: Text(loc, "landing.meta.description", "Centralize suas conversas, organize contatos e acompanhe métricas do seu WhatsApp em uma plataforma simples e poderosa."),
		HeaderSignIn:    Text(loc, "landing.header.sign_in", "Entrar"),
		HeaderStartFree: Text(loc, "landing.header.start_free", "Começar Grátis"),
		HeroBadge:       Text(loc, "landing.hero.badge", "Conecte seu WhatsApp em segundos"),
		HeroTitle:       Text(loc, "landing.hero.title", "Gerencie seu WhatsApp com"),
		HeroHighlight:   Text(loc, "landing.hero.title_highlight", "inteligência"),
		HeroLead:        Text(loc, "landing.hero.lead", "Centralize suas conversas, organize contatos e acompanhe métricas. Tudo em uma plataforma simples e poderosa."),
		HeroStartNow:    Text(loc, "landing.hero.start_now", "Começar Agora"),
		HeroHaveAccount: Text(loc, "landing.hero.have_account", "Já tenho conta"),
		FeaturesHeading: Text(loc, "landing.features.heading", "Tudo que você precisa"),
		CTAHeading:      Text(loc, "landing.cta.heading", "Pronto para começar?"),
		CTALead:         Text(loc, "landing.cta.lead", "Crie sua conta gratuita e conecte seu WhatsApp em minutos"),
		CTAButton:       Text(loc, "landing.cta.button", "Criar Conta Gratuita"),
		FooterRights:    Text(loc, "landing.footer.rights", "© 2024 WhatsApp CRM. Todos os direitos reservados."),
		LanguageLabel:   Text(loc, "core.nav.language", "Idioma"),
	}
}

// NotFound returns localized copy for the public 404 page.
func NotFound(tag language.Tag) ErrorCopy {
	loc := Printer(tag)
	return ErrorCopy{
		Lang:     tag.String(),
		Brand:    Text(loc, "core.brand", "WhatsApp CRM"),
		Title:    Text(loc, "core.error.not_found.title", "Página não encontrada"),
		Message:  Text(loc, "core.error.not_found.message", "O endereço que você abriu não existe ou foi movido."),
		HomeLink: Text(loc, "core.error.not_found.home", "Voltar para o início"),
	}
}

// ServerError returns localized copy for the public 5xx page.
func ServerError(tag language.Tag) ErrorCopy {
	loc := Printer(tag)
	return ErrorCopy{
		Lang:     tag.String(),
		Brand:    Text(loc, "core.brand", "WhatsApp CRM"),
		Title:    Text(loc, "core.error.server.title", "Algo deu errado"),
		Message:  Text(loc, "core.error.server.message", "Não foi possível carregar esta página. Tente novamente em instantes."),
		HomeLink: Text(loc, "core.error.not_found.home", "Voltar para o início"),
	}
}

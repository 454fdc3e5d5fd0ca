// Package i18n defines the languages the product ships and how free-form
// language input maps onto them.
package i18n

import (
	"strings"

	_ "github.com/wacrm/wacrm/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.BrazilianPortuguese,
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and maps it to a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supportedTags[index], true
}

// MatchTags returns the best supported tag for a preference list, or the
// default when nothing matches.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// LabelKey returns the catalog key naming tag in the language switcher.
func LabelKey(tag language.Tag) string {
	switch tag {
	case language.BrazilianPortuguese:
		return "core.nav.lang_pt_br"
	case language.AmericanEnglish:
		return "core.nav.lang_en"
	default:
		return tag.String()
	}
}

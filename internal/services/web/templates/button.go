package templates

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ButtonVariant selects the button color treatment.
type ButtonVariant string

const (
	ButtonDefault  ButtonVariant = "default"
	ButtonGhost    ButtonVariant = "ghost"
	ButtonGradient ButtonVariant = "gradient"
	ButtonOutline  ButtonVariant = "outline"
)

// ButtonSize selects the button padding and type scale.
type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSmall   ButtonSize = "sm"
	ButtonSizeLarge   ButtonSize = "lg"
	ButtonSizeXL      ButtonSize = "xl"
)

// ButtonProps configures one navigation button.
type ButtonProps struct {
	Variant ButtonVariant
	Size    ButtonSize
	Href    string
	Class   string
	// Action names the button for analytics hooks; rendered as data-action.
	Action string
}

// ButtonClass returns the class list for props. Unknown variants and sizes
// fall back to their defaults.
func ButtonClass(props ButtonProps) string {
	variant := props.Variant
	switch variant {
	case ButtonGhost, ButtonGradient, ButtonOutline:
	default:
		variant = ButtonDefault
	}
	size := props.Size
	switch size {
	case ButtonSizeSmall, ButtonSizeLarge, ButtonSizeXL:
	default:
		size = ButtonSizeDefault
	}
	classes := "btn btn-" + string(variant) + " btn-" + string(size)
	if extra := strings.TrimSpace(props.Class); extra != "" {
		classes += " " + extra
	}
	return classes
}

// Button renders an anchor styled as a button.
func Button(props ButtonProps, content ...g.Node) g.Node {
	href := strings.TrimSpace(props.Href)
	if href == "" {
		href = "#"
	}
	action := strings.TrimSpace(props.Action)
	return html.A(
		html.Href(href),
		html.Class(ButtonClass(props)),
		g.If(action != "", html.Data("action", action)),
		g.Group(content),
	)
}

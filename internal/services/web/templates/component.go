// Package templates renders the public web pages. Pages are templ components
// whose markup is assembled from gomponents nodes.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a gomponents node tree to a templ component.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// Embed places a templ component inside a gomponents tree.
func Embed(ctx context.Context, component templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		if component == nil {
			return nil
		}
		return component.Render(ctx, w)
	})
}

// children renders the templ children attached to ctx. The children are read
// before ClearChildren, which resets the shared context value.
func children(ctx context.Context) g.Node {
	body := templ.GetChildren(ctx)
	return Embed(templ.ClearChildren(ctx), body)
}

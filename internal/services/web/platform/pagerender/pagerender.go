// Package pagerender centralizes public page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/wacrm/wacrm/internal/services/web/platform/httpx"
	webtemplates "github.com/wacrm/wacrm/internal/services/web/templates"
)

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePublicPage renders body inside the public layout and writes it with
// statusCode. Nothing is written to w until rendering succeeds; on a render
// failure a plain 500 is written and the error returned.
func WritePublicPage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, statusCode int, body templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if body == nil {
		body = emptyComponent{}
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	var rendered bytes.Buffer
	if err := webtemplates.PublicLayout(page).Render(ctx, &rendered); err != nil {
		httpx.WriteError(w, err)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(rendered.Bytes())
	return nil
}

// Package weberror renders shared public error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/wacrm/wacrm/internal/services/web/platform/errors"
	webi18n "github.com/wacrm/wacrm/internal/services/web/platform/i18n"
	"github.com/wacrm/wacrm/internal/services/web/platform/pagerender"
	"github.com/wacrm/wacrm/internal/services/web/platform/requestmeta"
	"github.com/wacrm/wacrm/internal/services/web/routepath"
	webtemplates "github.com/wacrm/wacrm/internal/services/web/templates"
)

// ShouldRenderPage reports whether status should use the error page UX.
func ShouldRenderPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if localized := localizedMessage(loc, err); localized != "" {
		return localized
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// localizedMessage returns the catalog text for the error's localization key,
// or "" when the error has no key or the catalog lacks it.
func localizedMessage(loc webi18n.Localizer, err error) string {
	if loc == nil {
		return ""
	}
	key := apperrors.LocalizationKey(err)
	if key == "" {
		return ""
	}
	localized := strings.TrimSpace(loc.Sprintf(key))
	if localized == key {
		return ""
	}
	return localized
}

// WritePage writes a localized public error page for statusCode. Statuses
// without a dedicated page fall back to the server error page.
func WritePage(w http.ResponseWriter, r *http.Request, statusCode int, policy requestmeta.SchemePolicy) error {
	return writePage(w, r, statusCode, policy, nil)
}

// WriteError writes err as a user-safe response: a rendered page for 404 and
// 5xx, plain localized text otherwise. A localization key on err replaces the
// page's default message.
func WriteError(w http.ResponseWriter, r *http.Request, err error, policy requestmeta.SchemePolicy) error {
	if w == nil {
		return nil
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderPage(statusCode) {
		return writePage(w, r, statusCode, policy, err)
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, policy)
	http.Error(w, PublicMessage(loc, err), statusCode)
	return nil
}

func writePage(w http.ResponseWriter, r *http.Request, statusCode int, policy requestmeta.SchemePolicy, cause error) error {
	if w == nil {
		return nil
	}
	if !ShouldRenderPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, tag := webi18n.ResolveLocalizer(w, r, policy)
	pageCopy := webi18n.ServerError(tag)
	if statusCode == http.StatusNotFound {
		pageCopy = webi18n.NotFound(tag)
	}
	if message := localizedMessage(loc, cause); message != "" {
		pageCopy.Message = message
	}
	body := webtemplates.ErrorPage(webtemplates.ErrorView{
		Brand:      pageCopy.Brand,
		StatusCode: statusCode,
		Title:      pageCopy.Title,
		Message:    pageCopy.Message,
		HomeLabel:  pageCopy.HomeLink,
		HomeURL:    routepath.Root,
	})
	page := webtemplates.PageContext{
		Lang:  pageCopy.Lang,
		Title: pageCopy.Title + " | " + pageCopy.Brand,
	}
	return pagerender.WritePublicPage(w, r, page, statusCode, body)
}

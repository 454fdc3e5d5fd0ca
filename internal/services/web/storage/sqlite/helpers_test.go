package sqlite

import (
	"net/http"
	"net/http/httptest"

	"github.com/wacrm/wacrm/internal/services/web/platform/sessioncookie"
)

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: value})
	return req
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"zakat_app_echo/internal/services"
)

// SessionCookieName carries the operator's session id.
const SessionCookieName = "zakat_session"

// StoreContextKey is where the resolved record store lives on the request context.
const StoreContextKey = "store"

// WithSession returns a middleware that resolves the session cookie to a
// record store. A missing, empty or expired cookie gets a fresh seeded
// store and a new cookie.
func WithSession(manager *services.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var store *services.Store

			cookie, err := c.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				store = manager.Get(cookie.Value)
			}

			if store == nil {
				id, fresh := manager.Create()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
				})
				store = fresh
			}

			c.Set(StoreContextKey, store)
			return next(c)
		}
	}
}

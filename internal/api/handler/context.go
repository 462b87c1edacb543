package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the identity claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both id and role must
// be present (presence proves the middleware ran and the token carried a
// complete claim set).
func ctxClaims(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

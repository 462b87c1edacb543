package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// HeaderToken is the request header carrying the bearer token. The API keeps
// the legacy x-auth-token header rather than the Authorization scheme, so
// the token value is sent raw without a "Bearer " prefix.
const HeaderToken = "x-auth-token"

// Auth verifies the x-auth-token JWT and injects the identity claims into
// the request context. Claims are trusted for the request lifetime and not
// re-checked against the store.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderToken)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
			}

			c.Set("user_id", claims["id"])
			c.Set("name", claims["name"])
			c.Set("email", claims["email"])
			c.Set("role", claims["role"])

			return next(c)
		}
	}
}

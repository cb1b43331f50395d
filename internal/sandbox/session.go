package sandbox

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const sessionCookieName = "session"

const sessionTTL = 24 * time.Hour

// issueSessionCookie はセッションcookie（HS256のJWT）を発行する。
func (s *Server) issueSessionCookie(c echo.Context, userID string) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  now.Add(sessionTTL),
	})
	return nil
}

func (s *Server) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// requireSession はセッションcookieを検証してuser_idをContextへ積む。
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "UNAUTHORIZED"})
		}

		tok, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !tok.Valid {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "UNAUTHORIZED"})
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "UNAUTHORIZED"})
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "UNAUTHORIZED"})
		}

		c.Set("user_id", sub)
		return next(c)
	}
}

func userIDFromContext(c echo.Context) (string, bool) {
	v, ok := c.Get("user_id").(string)
	return v, ok && v != ""
}

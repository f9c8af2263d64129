package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"gallery-app/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "gallery_session"

// SessionID identifies a browsing context. Anonymous visitors get a random
// id stored in a long-lived cookie; it stays stable across reloads so the
// persisted cart/favorites/preference records round-trip. A cookie value
// that is not an id we issued (session.IsValidID) is treated as absent and
// replaced — the id names a directory on disk and must never carry
// client-chosen path segments.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || !session.IsValidID(id) {
			id, err = newSessionID()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to generate session id"})
				return
			}
			c.SetCookie(
				sessionCookie,
				id,
				60*60*24*365,
				"/",
				"",
				false, // secure (true in prod HTTPS)
				true,  // httpOnly
			)
		}
		c.Set("session_id", id)
		c.Next()
	}
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

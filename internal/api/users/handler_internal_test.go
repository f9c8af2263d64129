package users

import (
	"testing"

	"gallery-app/config"

	"github.com/stretchr/testify/assert"
)

func TestSigninRedirectURL(t *testing.T) {
	old := config.APP_URL
	defer func() { config.APP_URL = old }()

	config.APP_URL = "https://gallery.example.com"
	assert.Equal(t, "https://gallery.example.com/signin", signinRedirectURL())
}

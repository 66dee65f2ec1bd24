package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"READ_TIMEOUT_SECONDS": "30", "BAD": "abc"}

	assert.Equal(t, 30, GetInt(c, "READ_TIMEOUT_SECONDS", 180))
	assert.Equal(t, 180, GetInt(c, "BAD", 180))
	assert.Equal(t, 180, GetInt(c, "MISSING", 180))
}

func TestGetStrings(t *testing.T) {
	c := map[string]string{
		"ACCEPTED_ORIGINS": "https://a.dev, https://b.dev,,https://c.dev",
	}

	assert.Equal(t, []string{"https://a.dev", "https://b.dev", "https://c.dev"}, GetStrings(c, "ACCEPTED_ORIGINS"))
	assert.Nil(t, GetStrings(c, "MISSING"))
}

func TestHas(t *testing.T) {
	c := map[string]string{"DATABASE_URL": "postgres://localhost/site", "EMPTY": ""}

	assert.True(t, Has(c, "DATABASE_URL"))
	assert.False(t, Has(c, "EMPTY"), "empty value means unset")
	assert.False(t, Has(c, "MISSING"))
}

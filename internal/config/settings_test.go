package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	for _, k := range []string{"WHATIF_PORT", "WHATIF_ENV", "WHATIF_LOG_LEVEL", "WHATIF_LOG_PRETTY", "WHATIF_CORS_ORIGINS", "WHATIF_READ_TIMEOUT", "WHATIF_WRITE_TIMEOUT"} {
		t.Setenv(k, "")
	}

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 8080, s.Port)
	assert.Equal(t, ":8080", s.Addr())
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.LogPretty)
	assert.False(t, s.IsProduction())
	assert.Equal(t, []string{"*"}, s.CORSOrigins)
	assert.Equal(t, 10*time.Second, s.ReadTimeout)
	assert.Equal(t, 10*time.Second, s.WriteTimeout)
}

func TestLoadSettings_FromEnvironment(t *testing.T) {
	t.Setenv("WHATIF_PORT", "9090")
	t.Setenv("WHATIF_ENV", "production")
	t.Setenv("WHATIF_LOG_LEVEL", "debug")
	t.Setenv("WHATIF_LOG_PRETTY", "true")
	t.Setenv("WHATIF_CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("WHATIF_READ_TIMEOUT", "3s")
	t.Setenv("WHATIF_WRITE_TIMEOUT", "bogus")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 9090, s.Port)
	assert.True(t, s.IsProduction())
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.LogPretty)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.CORSOrigins)
	assert.Equal(t, 3*time.Second, s.ReadTimeout)
	assert.Equal(t, 10*time.Second, s.WriteTimeout)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv("WHATIF_PORT", "70000")
	_, err := LoadSettings()
	assert.ErrorContains(t, err, "WHATIF_PORT")

	t.Setenv("WHATIF_PORT", "8080")
	t.Setenv("WHATIF_LOG_LEVEL", "chatty")
	_, err = LoadSettings()
	assert.ErrorContains(t, err, "WHATIF_LOG_LEVEL")
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadServerSettings_Defaults(t *testing.T) {
	t.Setenv("SALAIRENET_ADDR", "")
	t.Setenv("SALAIRENET_MAX_BODY_BYTES", "")

	settings := LoadServerSettings()

	assert.Equal(t, ":8080", settings.Addr)
	assert.Equal(t, "development", settings.Environment)
	assert.Equal(t, int64(65536), settings.MaxBodyBytes)
	assert.Equal(t, 5*time.Second, settings.ReadHeaderTimeout)
	assert.False(t, settings.Debug)
	assert.NoError(t, settings.Validate())
}

func TestLoadServerSettings_FromEnv(t *testing.T) {
	t.Setenv("SALAIRENET_ADDR", "127.0.0.1:9090")
	t.Setenv("SALAIRENET_ENV", "production")
	t.Setenv("SALAIRENET_MAX_BODY_BYTES", "2048")
	t.Setenv("SALAIRENET_READ_HEADER_TIMEOUT", "2s")
	t.Setenv("SALAIRENET_DEBUG", "true")

	settings := LoadServerSettings()

	assert.Equal(t, "127.0.0.1:9090", settings.Addr)
	assert.Equal(t, "production", settings.Environment)
	assert.Equal(t, int64(2048), settings.MaxBodyBytes)
	assert.Equal(t, 2*time.Second, settings.ReadHeaderTimeout)
	assert.True(t, settings.Debug)
}

func TestLoadServerSettings_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("SALAIRENET_MAX_BODY_BYTES", "lots")
	t.Setenv("SALAIRENET_DEBUG", "perhaps")
	t.Setenv("SALAIRENET_SHUTDOWN_TIMEOUT", "soon")

	settings := LoadServerSettings()

	assert.Equal(t, int64(65536), settings.MaxBodyBytes)
	assert.False(t, settings.Debug)
	assert.Equal(t, 10*time.Second, settings.ShutdownTimeout)
}

func TestServerSettings_Validate(t *testing.T) {
	settings := ServerSettings{Addr: ":8080", MaxBodyBytes: 512, ReadHeaderTimeout: time.Second}
	assert.ErrorContains(t, settings.Validate(), "SALAIRENET_MAX_BODY_BYTES")

	settings = ServerSettings{MaxBodyBytes: 4096, ReadHeaderTimeout: time.Second}
	assert.ErrorContains(t, settings.Validate(), "SALAIRENET_ADDR")
}

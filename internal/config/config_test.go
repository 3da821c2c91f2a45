package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[storage]
driver = "memory"

[admin]
username = "admin"
password_hash = "$2a$10$abcdefghijklmnopqrstuv"
token_secret = "secret"
`

func TestLoad_DefaultsApplied(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 720, cfg.Admin.TokenTTLMinutes)
	assert.Equal(t, 120, cfg.Booking.LeadTimeMinutes)
}

func TestLoad_PostgresRequiresDatabase(t *testing.T) {
	content := `
[storage]
driver = "postgres"

[admin]
username = "admin"
password_hash = "hash"
token_secret = "secret"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_UnknownDriverRejected(t *testing.T) {
	content := `
[storage]
driver = "sqlite"

[admin]
username = "admin"
password_hash = "hash"
token_secret = "secret"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_AdminCredentialsRequired(t *testing.T) {
	content := `
[storage]
driver = "memory"
`
	_, err := Load(writeConfig(t, content))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_FullConfig(t *testing.T) {
	content := `
[server]
http_port = 9090

[storage]
driver = "postgres"

[database]
host = "db.internal"
port = 5432
user = "salon"
password = "salon"
dbname = "salon_service"
sslmode = "disable"

[admin]
username = "root"
password_hash = "hash"
token_secret = "secret"

[booking]
lead_time_minutes = 30
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Booking.LeadTimeMinutes)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

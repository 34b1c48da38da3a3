package v1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseConfigDefaults(t *testing.T) {
	config := NewDatabaseConfig()

	assert.Equal(t, "localhost", config.Host)
	assert.Equal(t, "5432", config.Port)
	assert.Equal(t, "postgres", config.Username)
	assert.Equal(t, "localmate", config.Database)
	assert.Equal(t, "require", config.SSLMode)
	assert.Equal(t, 25, config.MaxOpenConns)
	assert.Equal(t, 5, config.MaxIdleConns)
	assert.Equal(t, time.Hour, config.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, config.ConnMaxIdleTime)
}

func TestNewDatabaseConfigFromEnvironment(t *testing.T) {
	t.Setenv("LOCALMATE_DB_HOSTNAME", "db.internal")
	t.Setenv("LOCALMATE_DB_PORT", "5433")
	t.Setenv("LOCALMATE_DB_USERNAME", "localmate_app")
	t.Setenv("LOCALMATE_DB_PASSWORD", "secret")
	t.Setenv("LOCALMATE_DB_DATABASENAME", "localmate_prod")
	t.Setenv("DB_SSLMODE", "disable")

	config := NewDatabaseConfig()

	assert.Equal(t, "db.internal", config.Host)
	assert.Equal(t, "5433", config.Port)
	assert.Equal(t, "localmate_app", config.Username)
	assert.Equal(t, "secret", config.Password)
	assert.Equal(t, "localmate_prod", config.Database)
	assert.Equal(t, "disable", config.SSLMode)
}

func TestConnectGormDBUnreachableHost(t *testing.T) {
	config := NewDatabaseConfig()
	config.Host = "unreachable.invalid"
	config.Port = "1"

	_, err := ConnectGormDB(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to")
}

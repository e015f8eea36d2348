package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "cyber_evolve.db", cfg.DatabaseURL)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "host=localhost dbname=cyber")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TIP_CRON", "")

	cfg := Load()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, "host=localhost dbname=cyber", cfg.DatabaseURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Empty(t, cfg.TipCron)
}

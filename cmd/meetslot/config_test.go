package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/meetslot/internal/calendar"
	"github.com/nikmy/meetslot/internal/finder"
	"github.com/nikmy/meetslot/pkg/environment"
)

func writeConfig(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func Test_loadConfig(t *testing.T) {
	path := writeConfig(t, `
Environment: prod
Finder:
  noMandatory: optimize
  maxChecks: 10
API:
  query_timeout: 2s
  http:
    addr: ":9090"
Calendar:
  kind: mongo
  location: UTC
  mongo:
    url: mongodb://db:27017
    database: meetslot
    collection: events
`)

	cfg, err := loadConfig(flags{config: path})
	require.NoError(t, err)

	require.Equal(t, environment.Production, cfg.Environment)
	require.Equal(t, finder.Config{NoMandatory: finder.PolicyOptimize, MaxChecks: 10}, cfg.Finder)
	require.Equal(t, 2*time.Second, cfg.API.QueryTimeout)
	require.Equal(t, ":9090", cfg.API.HTTP.Addr)
	require.Equal(t, calendar.KindMongo, cfg.Calendar.Kind)
	require.Equal(t, "events", cfg.Calendar.Mongo.Collection)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)

	cfg, err = loadConfig(flags{config: path, env: "dev"})
	require.NoError(t, err)
	require.Equal(t, environment.Development, cfg.Environment)
}

func Test_loadConfig_Errors(t *testing.T) {
	_, err := loadConfig(flags{config: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)

	_, err = loadConfig(flags{config: writeConfig(t, "Finder:\n  noMandatory: sometimes\n")})
	require.Error(t, err)
}

func Test_exampleConfig(t *testing.T) {
	cfg, err := loadConfig(flags{config: "../../config.yaml"})
	require.NoError(t, err)
	require.Equal(t, finder.PolicyIncludeAll, cfg.Finder.NoMandatory)
	require.Equal(t, calendar.KindICS, cfg.Calendar.Kind)
}

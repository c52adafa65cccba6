// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ==========================
// LoadFromFile Tests
// ==========================

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: sales-datagen
  environment: test
generator:
  seed: 42
  num_customers: 25
  num_sales_people: 5
  anchor_date: "2026-01-01"
export:
  format: csv
  output: out
logging:
  level: debug
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Generator.Seed)
	assert.Equal(t, int64(42), *cfg.Generator.Seed)
	assert.Equal(t, 25, cfg.Generator.NumCustomers)
	assert.Equal(t, 5, cfg.Generator.NumSalesPeople)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)

	anchor, err := cfg.Generator.AnchorTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), anchor)
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: sales-datagen
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Generator.NumCustomers)
	assert.Equal(t, 10, cfg.Generator.NumSalesPeople)
	assert.Nil(t, cfg.Generator.Seed)
	assert.Equal(t, "json", cfg.Export.Format)
	assert.Equal(t, "dataset.json", cfg.Export.Output)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":9102", cfg.Metrics.Address)

	_, err = cfg.Generator.AnchorTime()
	assert.NoError(t, err, "default anchor date must parse")
}

func TestLoadFromFile_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "hunter2")

	path := writeConfigFile(t, `
database:
  postgres:
    host: localhost
    port: 5432
    user: datagen
    password: ${TEST_DB_PASSWORD}
    database: sales
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", cfg.Database.Postgres.Password)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// ==========================
// Validation Tests
// ==========================

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "negative customer count",
			content: `
generator:
  num_customers: -1
`,
			wantErr: "num_customers",
		},
		{
			name: "bad anchor date",
			content: `
generator:
  anchor_date: "January 1st"
`,
			wantErr: "anchor_date",
		},
		{
			name: "unknown export format",
			content: `
export:
  format: xml
`,
			wantErr: "export.format",
		},
		{
			name: "postgres load without host",
			content: `
load:
  postgres: true
`,
			wantErr: "database.postgres.host",
		},
		{
			name: "redis load without address",
			content: `
load:
  redis: true
`,
			wantErr: "database.redis.address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			_, err := LoadFromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// ==========================
// Helper Tests
// ==========================

func TestPostgresConfig_GetDSN(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "datagen",
		Password: "secret",
		Database: "sales",
		SSLMode:  "disable",
	}
	dsn := cfg.GetDSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "dbname=sales")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
}

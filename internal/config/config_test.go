package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes content to a temporary YAML file and returns its path
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	return tmpFile.Name()
}

// TestLoadConfig_Defaults tests loading configuration with default values
func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify server defaults
	assert.Equal(t, 8082, config.Server.Port)
	assert.Equal(t, 30*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, config.Server.WriteTimeout)

	// Verify Kafka defaults
	assert.Equal(t, []string{"localhost:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "offer_snapshots", config.Kafka.Topic)
	assert.Equal(t, "edge-finder", config.Kafka.GroupID)
	assert.Equal(t, "edges", config.Kafka.EdgesTopic)

	// Verify Redis defaults
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, "", config.Redis.Password)
	assert.Equal(t, 0, config.Redis.DB)
	assert.Equal(t, 10*time.Minute, config.Redis.TTL)

	// Verify engine defaults
	assert.Equal(t, "pinnacle", config.Engine.ReferenceBookmaker)
	assert.Equal(t, 0.5, config.Engine.MinEdge)
	assert.Equal(t, 40.0, config.Engine.MaxEdge)
	assert.Equal(t, 0.01, config.Engine.KellyThreshold)
	assert.False(t, config.Engine.EnforceKellyThreshold)
	assert.True(t, config.Engine.TwoWayInclusiveScan)

	// Verify logging defaults
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

// TestLoadConfig_WithFile tests loading configuration from file
func TestLoadConfig_WithFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  read_timeout: 45s
  write_timeout: 45s

kafka:
  brokers:
    - broker1:9092
    - broker2:9092
  topic: test_snapshots
  group_id: test_group
  edges_topic: test_edges

redis:
  addr: redis:6379
  password: test_password
  db: 1
  ttl: 30m

engine:
  reference_bookmaker: betfair
  min_edge: 1.5
  max_edge: 25
  kelly_threshold: 0.02
  enforce_kelly_threshold: true
  two_way_inclusive_scan: false

logging:
  level: debug
  format: console
`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, 45*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 45*time.Second, config.Server.WriteTimeout)

	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "test_snapshots", config.Kafka.Topic)
	assert.Equal(t, "test_group", config.Kafka.GroupID)
	assert.Equal(t, "test_edges", config.Kafka.EdgesTopic)

	assert.Equal(t, "redis:6379", config.Redis.Addr)
	assert.Equal(t, "test_password", config.Redis.Password)
	assert.Equal(t, 1, config.Redis.DB)
	assert.Equal(t, 30*time.Minute, config.Redis.TTL)

	assert.Equal(t, "betfair", config.Engine.ReferenceBookmaker)
	assert.Equal(t, 1.5, config.Engine.MinEdge)
	assert.Equal(t, 25.0, config.Engine.MaxEdge)
	assert.Equal(t, 0.02, config.Engine.KellyThreshold)
	assert.True(t, config.Engine.EnforceKellyThreshold)
	assert.False(t, config.Engine.TwoWayInclusiveScan)

	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
}

// TestLoadConfig_InvalidFile tests loading with non-existent file
func TestLoadConfig_InvalidFile(t *testing.T) {
	config, err := LoadConfig("/nonexistent/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestLoadConfig_MalformedFile tests loading with values that cannot be decoded
func TestLoadConfig_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: invalid_port
  read_timeout: not_a_duration
`)

	config, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestLoadConfig_PartialFile tests that unspecified values keep their defaults
func TestLoadConfig_PartialFile(t *testing.T) {
	path := writeConfigFile(t, `
engine:
  reference_bookmaker: sbobet
`)

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "sbobet", config.Engine.ReferenceBookmaker)
	assert.Equal(t, 0.5, config.Engine.MinEdge)
	assert.Equal(t, 8082, config.Server.Port)
	assert.Equal(t, "offer_snapshots", config.Kafka.Topic)
}

// TestLoadConfig_EnvironmentVariables tests environment variable overrides
func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("EDGE_FINDER_SERVER_PORT", "7777")
	t.Setenv("EDGE_FINDER_REDIS_ADDR", "env-redis:6379")
	t.Setenv("EDGE_FINDER_ENGINE_REFERENCE_BOOKMAKER", "betfair")
	t.Setenv("EDGE_FINDER_ENGINE_ENFORCE_KELLY_THRESHOLD", "true")

	config, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 7777, config.Server.Port)
	assert.Equal(t, "env-redis:6379", config.Redis.Addr)
	assert.Equal(t, "betfair", config.Engine.ReferenceBookmaker)
	assert.True(t, config.Engine.EnforceKellyThreshold)
}

// TestLoadConfig_InvalidEngine tests rejection of unusable engine settings
func TestLoadConfig_InvalidEngine(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "empty reference bookmaker",
			content: `
engine:
  reference_bookmaker: " "
`,
		},
		{
			name: "inverted window",
			content: `
engine:
  min_edge: 40
  max_edge: 0.5
`,
		},
		{
			name: "kelly threshold above one",
			content: `
engine:
  kelly_threshold: 1.5
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeConfigFile(t, tt.content))

			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Nil(t, config)
		})
	}
}

// TestToFinderParams tests conversion to edge finder parameters
func TestToFinderParams(t *testing.T) {
	engineConfig := EngineConfig{
		ReferenceBookmaker:    "pinnacle",
		MinEdge:               0.5,
		MaxEdge:               40,
		KellyThreshold:        0.01,
		EnforceKellyThreshold: true,
		TwoWayInclusiveScan:   true,
	}

	params := engineConfig.ToFinderParams()

	assert.Equal(t, "pinnacle", params.ReferenceBookmaker)
	assert.True(t, decimal.RequireFromString("0.5").Equal(params.MinEdge))
	assert.True(t, decimal.NewFromInt(40).Equal(params.MaxEdge))
	assert.True(t, decimal.RequireFromString("0.01").Equal(params.KellyThreshold))
	assert.True(t, params.EnforceKellyThreshold)
	assert.True(t, params.TwoWayInclusiveScan)
}

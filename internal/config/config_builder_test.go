package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	want := Defaults()
	assert.Equal(t, &want, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:5000", RequestTimeout: 5 * time.Second}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:5000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuild_FillsDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Workers: Workers{SearchPollInterval: time.Second},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.SearchPollInterval)
	assert.Equal(t, 10*time.Second, cfg.Workers.ConversationPollInterval)
	assert.Equal(t, time.Second, cfg.Workers.BatchSendDelay)
	assert.Equal(t, "client-crawler.db", cfg.Storage.DB.DSN)
}

func TestBuild_RejectsNegativeDurations(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Workers: Workers{BatchSendDelay: -time.Second},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_LoadsIntoEnvironment(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("ADAPTER_ADDRESS=http://dotenv:5000\n"), 0o600))
	t.Setenv("DOTENV_PATH", p)
	t.Setenv("ADAPTER_ADDRESS", "")
	require.NoError(t, os.Unsetenv("ADAPTER_ADDRESS"))

	b := newConfigBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://dotenv:5000", b.configs[0].Adapter.HTTPAddress)
}

func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("ADAPTER_ADDRESS=http://dotenv:5000\n"), 0o600))
	t.Setenv("DOTENV_PATH", p)
	t.Setenv("ADAPTER_ADDRESS", "http://real-env:5000")

	b := newConfigBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "http://real-env:5000", b.configs[0].Adapter.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://backend:5000")
	t.Setenv("WORKERS_SEARCH_POLL_INTERVAL", "2s")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://backend:5000", b.configs[0].Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, b.configs[0].Workers.SearchPollInterval)
}

func TestWithEnv_InvalidDurationSetsError(t *testing.T) {
	t.Setenv("WORKERS_BATCH_SEND_DELAY", "soon")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Adapter.HTTPAddress = "http://json:5000"
	payload.Workers.BatchSendDelay = Duration(2 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://json:5000", b.configs[1].Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, b.configs[1].Workers.BatchSendDelay)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "last-wins.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins.db", b.configs[2].Storage.DB.DSN)
}

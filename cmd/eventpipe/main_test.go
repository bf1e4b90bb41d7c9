package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/eventkit/pkg/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreAnyFunction("os/signal.loop"))
}

func TestRun(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("EVENTQUEUE_CAPACITY", "2")
	t.Setenv("EVENTQUEUE_OFFER_TIMEOUT", "5s")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	var out, logs bytes.Buffer
	input := strings.NewReader("alpha\nbeta\ngamma\ndelta\n")

	require.NoError(t, run(context.Background(), options{}, input, &out, &logs))

	assert.Equal(t, "1: alpha\n2: beta\n3: gamma\n4: delta\n", out.String())
	assert.Contains(t, logs.String(), "shutdown triggered")
	assert.Contains(t, logs.String(), "all queued events resolved")
	assert.Contains(t, logs.String(), "env=development")
}

func TestRun_EnvFiles(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	// Registers restoration of the variables the env files set
	t.Setenv("APP_ENV", "")
	t.Setenv("EVENTQUEUE_CAPACITY", "")
	t.Setenv("LOG_FORMAT", "")

	dir := t.TempDir()
	base := filepath.Join(dir, "base.env")
	local := filepath.Join(dir, "local.env")
	require.NoError(t, os.WriteFile(base, []byte("APP_ENV=production\nEVENTQUEUE_CAPACITY=1\nLOG_FORMAT=text\n"), 0o600))
	require.NoError(t, os.WriteFile(local, []byte("LOG_FORMAT=json\n"), 0o600))

	opts, err := parseFlags([]string{"--env", base, "-e", local})
	require.NoError(t, err)

	var out, logs bytes.Buffer
	require.NoError(t, run(context.Background(), opts, strings.NewReader("one\ntwo\n"), &out, &logs))

	assert.Equal(t, "1: one\n2: two\n", out.String())
	assert.Contains(t, logs.String(), `"env":"production"`)
	assert.Contains(t, logs.String(), `"service":"eventpipe"`)
	assert.NotContains(t, logs.String(), "event dequeued", "production logs at info level")
}

func TestRun_MissingEnvFile(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	opts := options{envFiles: []string{filepath.Join(t.TempDir(), "missing.env")}}

	var out, logs bytes.Buffer
	err := run(context.Background(), opts, strings.NewReader(""), &out, &logs)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestRun_InvalidLogSettings(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "level", key: "LOG_LEVEL", val: "loud"},
		{name: "format", key: "LOG_FORMAT", val: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.ResetCache()
			t.Cleanup(config.ResetCache)

			t.Setenv(tt.key, tt.val)

			var out, logs bytes.Buffer
			var err error
			require.NotPanics(t, func() {
				err = run(context.Background(), options{}, strings.NewReader(""), &out, &logs)
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid "+tt.key)
		})
	}
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	opts, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, opts.envFiles)

	opts, err = parseFlags([]string{"-e", "a.env", "--env", "b.env"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.env", "b.env"}, opts.envFiles)

	_, err = parseFlags([]string{"--unknown"})
	assert.Error(t, err)
}

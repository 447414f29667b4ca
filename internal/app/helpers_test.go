package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// setupAppTest creates an App with debug logging captured in a buffer.
func setupAppTest(t *testing.T, appConfig Config) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	out := &bytes.Buffer{}
	logs := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	cfg, err := NewConfig(appConfig)
	require.NoError(t, err)
	testApp, err := NewApp(out, logs, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("ANT25_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}

// writeFile writes content into a new file in a temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

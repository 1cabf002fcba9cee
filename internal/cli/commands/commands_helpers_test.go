package commands

import (
	"StudyDeck/internal/config"
	"bytes"
	"testing"
)

// testCfg указывает оба хранилища во временный каталог теста.
func testCfg(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir:        t.TempDir(),
		ListenAddr:     "localhost:0",
		StateKeySuffix: "v2",
	}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"
	"testing"
)

// swapWriter lets tests capture output despite the once-only Configure.
type swapWriter struct {
	mu  sync.Mutex
	buf *bytes.Buffer
}

func (w *swapWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *swapWriter) reset() *bytes.Buffer {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf = &bytes.Buffer{}
	return w.buf
}

var testOut = &swapWriter{buf: &bytes.Buffer{}}

func TestMain(m *testing.M) {
	Configure(Config{Level: "debug", Output: testOut, Service: "test-svc"})
	os.Exit(m.Run())
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	return entry
}

func TestConfigureOnce(t *testing.T) {
	buf := testOut.reset()
	// A second Configure call must be a no-op.
	Configure(Config{Level: "error", Output: &bytes.Buffer{}, Service: "other"})

	l := Base()
	l.Info().Msg("hello")

	entry := lastEntry(t, buf)
	if entry["service"] != "test-svc" {
		t.Errorf("expected service=test-svc, got %v", entry["service"])
	}
	if entry["message"] != "hello" {
		t.Errorf("expected message=hello, got %v", entry["message"])
	}
}

func TestWithComponent(t *testing.T) {
	buf := testOut.reset()

	l := WithComponent("config")
	l.Info().Msg("component test")

	entry := lastEntry(t, buf)
	if entry[FieldComponent] != "config" {
		t.Errorf("expected component=config, got %v", entry[FieldComponent])
	}
}

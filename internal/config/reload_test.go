// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestHolderReloadSwapsAtomically(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	writeConfig(t, configPath, "algorithm:\n  num_cores: 2\n")

	loader := NewLoader(configPath, "test")
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	holder := NewHolder(doc, loader, configPath)
	if holder.Get().Algorithm.NumCores != 2 {
		t.Fatalf("expected num_cores=2, got %d", holder.Get().Algorithm.NumCores)
	}

	writeConfig(t, configPath, "algorithm:\n  num_cores: 12\n")
	if err := holder.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() failed: %v", err)
	}
	if holder.Get().Algorithm.NumCores != 12 {
		t.Errorf("expected num_cores=12 after reload, got %d", holder.Get().Algorithm.NumCores)
	}
}

func TestHolderKeepsOldConfigOnBrokenReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	writeConfig(t, configPath, "algorithm:\n  num_cores: 2\n")

	loader := NewLoader(configPath, "test")
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	holder := NewHolder(doc, loader, configPath)

	writeConfig(t, configPath, "algorithm:\n  max_errors: -1\n")
	if err := holder.Reload(context.Background()); err == nil {
		t.Fatal("expected reload of invalid config to fail")
	}
	if holder.Get().Algorithm.NumCores != 2 {
		t.Errorf("old config must survive failed reload, got num_cores=%d",
			holder.Get().Algorithm.NumCores)
	}
}

func TestHolderNotifiesListeners(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	writeConfig(t, configPath, "algorithm:\n  num_cores: 2\n")

	loader := NewLoader(configPath, "test")
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	holder := NewHolder(doc, loader, configPath)

	ch := make(chan Document, 1)
	holder.RegisterListener(ch)

	writeConfig(t, configPath, "algorithm:\n  num_cores: 6\n")
	if err := holder.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() failed: %v", err)
	}

	select {
	case got := <-ch:
		if got.Algorithm.NumCores != 6 {
			t.Errorf("listener received num_cores=%d, want 6", got.Algorithm.NumCores)
		}
	case <-time.After(time.Second):
		t.Fatal("listener was not notified")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping watcher test in short mode")
	}

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	writeConfig(t, configPath, "algorithm:\n  num_cores: 2\n")

	loader := NewLoader(configPath, "test")
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	holder := NewHolder(doc, loader, configPath)

	ch := make(chan Document, 1)
	holder.RegisterListener(ch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := holder.StartWatcher(ctx); err != nil {
		t.Fatalf("StartWatcher() failed: %v", err)
	}
	defer holder.Stop()

	writeConfig(t, configPath, "algorithm:\n  num_cores: 9\n")

	select {
	case got := <-ch:
		if got.Algorithm.NumCores != 9 {
			t.Errorf("watcher delivered num_cores=%d, want 9", got.Algorithm.NumCores)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not trigger a reload")
	}
}

func TestHolderResolve(t *testing.T) {
	loader := NewLoader("", "test")
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	holder := NewHolder(doc, loader, "")

	res, err := holder.Resolve("SNP calling")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if res.Algorithm.Aligner != "bwa" {
		t.Errorf("expected aligner=bwa, got %q", res.Algorithm.Aligner)
	}
}

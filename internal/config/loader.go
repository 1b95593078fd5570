// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence.
type Loader struct {
	configPath      string
	version         string
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a new configuration loader. An empty configPath loads
// the built-in defaults plus environment overrides only.
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envInt(key string, defaultVal int) int {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseInt(key, defaultVal)
}

// Load loads the configuration document with precedence ENV > File > Defaults.
// It enforces Strict Validated Order: Parse File (Strict) -> Apply Env -> Validate.
func (l *Loader) Load() (Document, error) {
	doc := Defaults()

	if l.configPath != "" {
		if err := l.loadFile(l.configPath, &doc); err != nil {
			return doc, fmt.Errorf("load config file: %w", err)
		}
	}

	l.mergeEnv(&doc)

	// Galaxy config paths are resolved relative to the config file so that
	// relocated pipeline checkouts keep working.
	if doc.GalaxyConfig != "" && !filepath.IsAbs(doc.GalaxyConfig) && l.configPath != "" {
		doc.GalaxyConfig = filepath.Join(filepath.Dir(l.configPath), doc.GalaxyConfig)
	}

	doc.Version = l.version

	if err := Validate(doc); err != nil {
		return doc, fmt.Errorf("config validation failed: %w", err)
	}

	return doc, nil
}

// loadFile decodes a YAML document over doc with STRICT parsing. Unknown
// fields cause a fatal error to prevent misconfiguration. Sections present
// in the file replace defaults key-by-key; absent sections keep them.
func (l *Loader) loadFile(path string, doc *Document) error {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return nil
}

// mergeEnv applies SEQCONF_* overrides on top of the merged document.
// Only operational knobs are exposed; analysis parameters stay file-driven.
func (l *Loader) mergeEnv(doc *Document) {
	doc.GalaxyConfig = l.envString("SEQCONF_GALAXY_CONFIG", doc.GalaxyConfig)
	doc.Algorithm.NumCores = l.envInt("SEQCONF_NUM_CORES", doc.Algorithm.NumCores)
	doc.Algorithm.JavaMemory = l.envString("SEQCONF_JAVA_MEMORY", doc.Algorithm.JavaMemory)
	doc.Distributed.RabbitMQVhost = l.envString("SEQCONF_RABBITMQ_VHOST", doc.Distributed.RabbitMQVhost)
}

// LoadFileDocument loads a YAML config document without applying
// environment overrides or validation.
func LoadFileDocument(path string) (Document, error) {
	var doc Document
	loader := NewLoader(path, "")
	if err := loader.loadFile(path, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}

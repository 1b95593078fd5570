// SPDX-License-Identifier: MIT

package config

import "fmt"

// Resolved is the flattened, validated configuration for a single pipeline
// run. It never aliases the source document's maps, so callers may share it
// read-only across workers without further locking.
type Resolved struct {
	// Profile is the custom algorithm name the record was resolved with,
	// or empty for the bare defaults.
	Profile string `json:"profile,omitempty"`

	Algorithm    Algorithm         `json:"algorithm"`
	Program      map[string]string `json:"program"`
	Analysis     Analysis          `json:"analysis"`
	Distributed  Distributed       `json:"distributed"`
	GalaxyConfig string            `json:"galaxy_config"`
}

// Resolve merges the named custom algorithm profile onto the document's
// algorithm defaults and validates the result. An empty profile name
// returns the defaults unchanged. Resolution is a pure function: the
// document is never mutated and errors carry one of ErrUnknownProfile,
// ErrUnknownTool or ErrInvalidValue for classification.
func Resolve(doc Document, profile string) (*Resolved, error) {
	alg := doc.Algorithm
	if profile != "" {
		override, ok := doc.CustomAlgorithms[profile]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
		}
		alg = alg.apply(override)
	}

	if err := validateAlgorithm(alg, doc.Program); err != nil {
		if profile != "" {
			return nil, fmt.Errorf("custom algorithm %q: %w", profile, err)
		}
		return nil, err
	}

	return &Resolved{
		Profile:      profile,
		Algorithm:    alg,
		Program:      cloneStringMap(doc.Program),
		Analysis:     doc.Analysis,
		Distributed:  doc.Distributed,
		GalaxyConfig: doc.GalaxyConfig,
	}, nil
}

// SkipAlignment reports whether the resolved run requests no alignment
// stage at all (the "Minimal" profile semantics).
func (r *Resolved) SkipAlignment() bool {
	return r.Algorithm.Aligner == ""
}

// AlignerPath returns the executable path of the resolved aligner. The
// second return is false when alignment is skipped.
func (r *Resolved) AlignerPath() (string, bool) {
	if r.SkipAlignment() {
		return "", false
	}
	return r.Program[r.Algorithm.Aligner], true
}

// ToolPath returns the executable path of a named tool.
func (r *Resolved) ToolPath(name string) (string, error) {
	path, ok := r.Program[name]
	if !ok {
		return "", fmt.Errorf("%w: %q has no program entry", ErrUnknownTool, name)
	}
	return path, nil
}

// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"sort"

	"github.com/ManuGH/seqconf/internal/validate"
)

// Platforms the pipeline knows how to process.
var knownPlatforms = []string{"illumina", "solid", "454", "iontorrent"}

// Quality score encodings accepted by downstream recalibration.
var knownQualityFormats = []string{"illumina", "standard"}

// Validate validates a full Document: the base algorithm section plus every
// custom algorithm profile resolved against it. This gives fail-fast load
// behavior; a document that validates here cannot fail later resolution.
func Validate(doc Document) error {
	if err := validateAlgorithm(doc.Algorithm, doc.Program); err != nil {
		return err
	}
	for _, name := range ProfileNames(doc) {
		merged := doc.Algorithm.apply(doc.CustomAlgorithms[name])
		if err := validateAlgorithm(merged, doc.Program); err != nil {
			return fmt.Errorf("custom algorithm %q: %w", name, err)
		}
	}
	return nil
}

// validateAlgorithm checks a fully merged algorithm section against the
// document invariants. Aligner lookup failures are classified as
// ErrUnknownTool, everything else as ErrInvalidValue.
func validateAlgorithm(alg Algorithm, program map[string]string) error {
	// Empty aligner means "skip alignment", never an error.
	if alg.Aligner != "" {
		if _, ok := program[alg.Aligner]; !ok {
			return fmt.Errorf("%w: aligner %q has no program entry", ErrUnknownTool, alg.Aligner)
		}
	}

	v := validate.New()
	v.NonNegative("max_errors", alg.MaxErrors)
	v.NonNegative("num_cores", alg.NumCores)
	v.NonNegative("bc_mismatch", alg.BCMismatch)
	v.NonNegative("bc_position", alg.BCPosition)
	v.Min("bc_read", alg.BCRead, 1)
	v.Enum("platform", alg.Platform, knownPlatforms, false)
	v.Enum("quality_format", alg.QualityFormat, knownQualityFormats, true)
	v.JavaMemory("java_memory", alg.JavaMemory, true)

	if !v.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidValue, v.Err())
	}
	return nil
}

// ProfileNames returns the custom algorithm profile names in sorted order.
func ProfileNames(doc Document) []string {
	names := make([]string, 0, len(doc.CustomAlgorithms))
	for name := range doc.CustomAlgorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

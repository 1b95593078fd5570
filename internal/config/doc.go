// SPDX-License-Identifier: MIT

// Package config loads, validates and resolves the pipeline configuration
// document (tool paths, algorithm defaults and named custom-algorithm
// profiles) consumed by the sequencing analysis pipeline.
package config

// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrUnknownProfile classifies resolution failures caused by a profile
	// name with no custom_algorithms entry.
	ErrUnknownProfile = errors.New("unknown custom algorithm profile")

	// ErrUnknownTool classifies resolution failures caused by an aligner
	// name with no program entry.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidValue classifies resolution failures caused by a field
	// violating its type or range constraint.
	ErrInvalidValue = errors.New("invalid configuration value")
)

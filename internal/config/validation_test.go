// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("built-in defaults must validate: %v", err)
	}
}

func TestValidateFieldConstraints(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Document)
		wantErr error
	}{
		{
			"negative max_errors",
			func(d *Document) { d.Algorithm.MaxErrors = -1 },
			ErrInvalidValue,
		},
		{
			"negative num_cores",
			func(d *Document) { d.Algorithm.NumCores = -2 },
			ErrInvalidValue,
		},
		{
			"zero bc_read",
			func(d *Document) { d.Algorithm.BCRead = 0 },
			ErrInvalidValue,
		},
		{
			"negative bc_position",
			func(d *Document) { d.Algorithm.BCPosition = -1 },
			ErrInvalidValue,
		},
		{
			"unknown platform",
			func(d *Document) { d.Algorithm.Platform = "nanopore" },
			ErrInvalidValue,
		},
		{
			"malformed java_memory",
			func(d *Document) { d.Algorithm.JavaMemory = "3gb" },
			ErrInvalidValue,
		},
		{
			"unknown quality_format",
			func(d *Document) { d.Algorithm.QualityFormat = "sanger64" },
			ErrInvalidValue,
		},
		{
			"aligner without program entry",
			func(d *Document) { d.Algorithm.Aligner = "novoalign" },
			ErrUnknownTool,
		},
		{
			"invalid profile override",
			func(d *Document) {
				d.CustomAlgorithms["bad"] = AlgorithmOverride{MaxErrors: ptr(-5)}
			},
			ErrInvalidValue,
		},
		{
			"profile aligner without program entry",
			func(d *Document) {
				d.CustomAlgorithms["bad"] = AlgorithmOverride{Aligner: ptr("maq")}
			},
			ErrUnknownTool,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Defaults()
			tt.mutate(&doc)
			err := Validate(doc)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateCaseInsensitiveJavaMemory(t *testing.T) {
	doc := Defaults()
	doc.Algorithm.JavaMemory = "6G"
	if err := Validate(doc); err != nil {
		t.Errorf("uppercase unit must validate: %v", err)
	}
}

func TestValidateEmptyOptionalFields(t *testing.T) {
	doc := Defaults()
	doc.Algorithm.JavaMemory = ""
	doc.Algorithm.QualityFormat = ""
	if err := Validate(doc); err != nil {
		t.Errorf("empty optional fields must validate: %v", err)
	}
}

func TestProfileNamesSorted(t *testing.T) {
	doc := Defaults()
	names := ProfileNames(doc)
	want := []string{"Minimal", "SNP calling"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

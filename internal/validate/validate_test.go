// SPDX-License-Identifier: MIT

package validate

import (
	"strings"
	"testing"
)

func TestValidatorAccumulates(t *testing.T) {
	v := New()
	if !v.IsValid() {
		t.Fatal("fresh validator must be valid")
	}
	if v.Err() != nil {
		t.Fatal("fresh validator must produce nil error")
	}

	v.NonNegative("max_errors", -1)
	v.Min("bc_read", 0, 1)
	v.NotEmpty("platform", "  ")

	if v.IsValid() {
		t.Fatal("validator with errors must be invalid")
	}
	if got := len(v.Errors()); got != 3 {
		t.Fatalf("expected 3 errors, got %d", got)
	}

	err := v.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"max_errors", "bc_read", "platform"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing field %q", msg, want)
		}
	}
}

func TestEnum(t *testing.T) {
	allowed := []string{"illumina", "solid"}
	tests := []struct {
		name       string
		value      string
		allowEmpty bool
		wantValid  bool
	}{
		{"known value", "illumina", false, true},
		{"unknown value", "nanopore", false, false},
		{"empty allowed", "", true, true},
		{"empty rejected", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Enum("platform", tt.value, allowed, tt.allowEmpty)
			if v.IsValid() != tt.wantValid {
				t.Errorf("Enum(%q) valid=%v, want %v", tt.value, v.IsValid(), tt.wantValid)
			}
		})
	}
}

func TestJavaMemory(t *testing.T) {
	tests := []struct {
		value      string
		allowEmpty bool
		wantValid  bool
	}{
		{"6g", false, true},
		{"512m", false, true},
		{"1024k", false, true},
		{"2G", false, true},
		{"", true, true},
		{"", false, false},
		{"6gb", false, false},
		{"g6", false, false},
		{"-6g", false, false},
		{"6", false, false},
	}
	for _, tt := range tests {
		v := New()
		v.JavaMemory("java_memory", tt.value, tt.allowEmpty)
		if v.IsValid() != tt.wantValid {
			t.Errorf("JavaMemory(%q, allowEmpty=%v) valid=%v, want %v",
				tt.value, tt.allowEmpty, v.IsValid(), tt.wantValid)
		}
	}
}

func TestValidationErrorSingle(t *testing.T) {
	v := New()
	v.Range("num_cores", 99, 0, 64)
	err := v.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "num_cores") {
		t.Errorf("unexpected message: %q", err.Error())
	}
	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors()) != 1 {
		t.Errorf("expected 1 error, got %d", len(verr.Errors()))
	}
}

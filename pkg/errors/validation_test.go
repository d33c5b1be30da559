package errors

import (
	"math"
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "out.tikz", false},
		{"nested", "figures/plot.tex", false},
		{"absolute", "/tmp/plot.pdf", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 2000)), true},
		{"null byte", "out\x00.tikz", true},
		{"newline", "out\n.tikz", true},
		{"directory", "figures/", true},
		{"dot", ".", true},
		{"dotdot", "figures/..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputPath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{".tikz", false},
		{".tex", false},
		{"tikz", true},
		{".", true},
		{"", true},
		{".ti.kz", true},
		{".a/b", true},
	}

	for _, tt := range tests {
		err := ValidateExtension(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateExtension(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidatePositive(t *testing.T) {
	if err := ValidatePositive("size", 10, 8); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := ValidatePositive("size", 1, v); !Is(err, ErrCodeInvalidInput) {
			t.Errorf("ValidatePositive(%v) = %v, want INVALID_INPUT", v, err)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidTarget,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeUnsupportedOutput,
		ErrCodeRenderFailed,
		ErrCodeVerifyFailed,
		ErrCodeFileNotFound,
		ErrCodeFileWrite,
		ErrCodeFileExists,
		ErrCodeInternal,
		AdvisoryMultiAxis,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}

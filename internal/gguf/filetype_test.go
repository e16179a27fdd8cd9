package gguf

import (
	"errors"
	"testing"
)

func TestLlamaFileTypeCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ft   LlamaFileType
		code int32
		name string
	}{
		{AllF32, 0, "ALL_F32"},
		{MostlyF16, 1, "MOSTLY_F16"},
		{MostlyQ8_0, 7, "MOSTLY_Q8_0"},
		{MostlyQ6K, 18, "MOSTLY_Q6_K"},
		{MostlyIQ1M, 31, "MOSTLY_IQ1_M"},
		{MostlyBF16, 32, "MOSTLY_BF16"},
		{MostlyTQ1_0, 36, "MOSTLY_TQ1_0"},
		{MostlyTQ2_0, 37, "MOSTLY_TQ2_0"},
		{Guessed, 1024, "GUESSED"},
	}

	for _, tc := range tests {
		if got := tc.ft.Int(); got != tc.code {
			t.Errorf("%s.Int(): got %d want %d", tc.name, got, tc.code)
		}
		if got := tc.ft.String(); got != tc.name {
			t.Errorf("String(%d): got %q want %q", tc.code, got, tc.name)
		}
	}
}

func TestParseLlamaFileType(t *testing.T) {
	t.Parallel()

	for code, name := range fileTypeNames {
		got, err := ParseLlamaFileType(code.Int())
		if err != nil {
			t.Fatalf("ParseLlamaFileType(%d) returned error: %v", code, err)
		}
		if got != code {
			t.Fatalf("ParseLlamaFileType(%d): got %v want %s", code, got, name)
		}
	}

	for _, bad := range []int32{4, 5, 6, 33, 34, 35, 38, -1, 1023} {
		_, err := ParseLlamaFileType(bad)
		if !errors.Is(err, ErrUnknownFileType) {
			t.Errorf("ParseLlamaFileType(%d): expected ErrUnknownFileType, got %v", bad, err)
		}
	}
}

func TestUnknownFileTypeString(t *testing.T) {
	t.Parallel()
	if got := LlamaFileType(5).String(); got != "ftype(5)" {
		t.Fatalf("unexpected string for retired code: %q", got)
	}
}

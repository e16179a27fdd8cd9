package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samcharles93/hf2gguf/internal/gguf"
)

func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := Assemble(Options{ModelDir: dir})
		if err != nil {
			t.Fatalf("Assemble returned error: %v", err)
		}
		if cfg.OutFile != dir {
			t.Fatalf("expected outfile to default to model dir, got %q", cfg.OutFile)
		}
		if cfg.Outtype != DefaultOuttype || cfg.FileType != gguf.MostlyF16 {
			t.Fatalf("unexpected outtype resolution: %v / %v", cfg.Outtype, cfg.FileType)
		}
		if cfg.SplitMaxSize != 0 || cfg.Splitting() {
			t.Fatalf("expected splitting disabled, got %+v", cfg)
		}
		if cfg.Endianness() != "little" {
			t.Fatalf("unexpected endianness: %s", cfg.Endianness())
		}
	})

	t.Run("explicit values pass through", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(t.TempDir(), "model-{ftype}.gguf")
		cfg, err := Assemble(Options{
			ModelDir:           dir,
			OutFile:            out,
			Outtype:            "q8-0",
			SplitMaxTensors:    128,
			SplitMaxSize:       "2G",
			BigEndian:          true,
			DryRun:             true,
			NoTensorFirstSplit: true,
			Verbose:            true,
			Metadata:           "meta.json",
			ModelName:          "tiny",
		})
		if err != nil {
			t.Fatalf("Assemble returned error: %v", err)
		}
		wantOut := filepath.Join(filepath.Dir(out), "model-q8_0.gguf")
		if cfg.OutFile != wantOut {
			t.Fatalf("unexpected outfile: got %q want %q", cfg.OutFile, wantOut)
		}
		if cfg.Outtype != OuttypeQ8_0 || cfg.FileType != gguf.MostlyQ8_0 {
			t.Fatalf("unexpected outtype resolution: %v / %v", cfg.Outtype, cfg.FileType)
		}
		if cfg.SplitMaxSize != 2_000_000_000 || cfg.SplitMaxTensors != 128 || !cfg.Splitting() {
			t.Fatalf("unexpected split settings: %+v", cfg)
		}
		if cfg.Endianness() != "big" || !cfg.DryRun || !cfg.NoTensorFirstSplit || !cfg.Verbose {
			t.Fatalf("flags not carried: %+v", cfg)
		}
		if cfg.Metadata != "meta.json" || cfg.ModelName != "tiny" {
			t.Fatalf("passthrough values lost: %+v", cfg)
		}
	})
}

func TestAssembleFailures(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "weights.safetensors")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	dir := t.TempDir()

	tests := []struct {
		name     string
		opts     Options
		wantFlag string
		wantErr  error
	}{
		{"missing dir", Options{ModelDir: filepath.Join(dir, "missing")}, FlagModel, ErrNotFound},
		{"file not dir", Options{ModelDir: file}, FlagModel, ErrNotADirectory},
		{"split with temp file", Options{ModelDir: dir, SplitMaxTensors: 1, UseTempFile: true}, FlagSplitMaxTensors, ErrConflictingOptions},
		{"bad split size", Options{ModelDir: dir, SplitMaxSize: "1Z"}, FlagSplitMaxSize, ErrInvalidFormat},
		{"negative split size", Options{ModelDir: dir, SplitMaxSize: "-5"}, FlagSplitMaxSize, ErrNegativeValue},
		{"bad outtype", Options{ModelDir: dir, Outtype: "q8-1"}, FlagOuttype, ErrInvalidOuttype},
		// Directory is checked before anything else.
		{"first failure wins", Options{ModelDir: file, SplitMaxTensors: 1, UseTempFile: true, SplitMaxSize: "bad", Outtype: "bad"}, FlagModel, ErrNotADirectory},
		{"conflict before size", Options{ModelDir: dir, SplitMaxTensors: 1, UseTempFile: true, SplitMaxSize: "bad"}, FlagSplitMaxTensors, ErrConflictingOptions},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Assemble(tc.opts)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			var optErr *OptionError
			if !errors.As(err, &optErr) {
				t.Fatalf("expected *OptionError, got %T", err)
			}
			if optErr.Flag != tc.wantFlag {
				t.Fatalf("unexpected flag: got %q want %q", optErr.Flag, tc.wantFlag)
			}
		})
	}
}

func TestOptionErrorMessage(t *testing.T) {
	t.Parallel()
	err := optionError(FlagSplitMaxSize, "1Z", ErrInvalidFormat)
	want := `invalid value "1Z" for --split-max-size: invalid format`
	if err.Error() != want {
		t.Fatalf("unexpected message: got %q want %q", err.Error(), want)
	}
}

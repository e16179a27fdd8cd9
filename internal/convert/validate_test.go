package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateModelDir(t *testing.T) {
	t.Parallel()

	t.Run("directory", func(t *testing.T) {
		if err := ValidateModelDir(t.TempDir()); err != nil {
			t.Fatalf("ValidateModelDir returned error: %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		err := ValidateModelDir(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if errors.Is(err, ErrNotADirectory) {
			t.Fatalf("missing path must not report ErrNotADirectory: %v", err)
		}
	})

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
		err := ValidateModelDir(path)
		if !errors.Is(err, ErrNotADirectory) {
			t.Fatalf("expected ErrNotADirectory, got %v", err)
		}
		if errors.Is(err, ErrNotFound) {
			t.Fatalf("regular file must not report ErrNotFound: %v", err)
		}
	})
}

func TestValidateSplitAndTempFile(t *testing.T) {
	t.Parallel()

	for n := -3; n <= 3; n++ {
		for _, temp := range []bool{false, true} {
			err := ValidateSplitAndTempFile(n, temp)
			wantConflict := n > 0 && temp
			if wantConflict {
				if !errors.Is(err, ErrConflictingOptions) {
					t.Errorf("(%d, %v): expected ErrConflictingOptions, got %v", n, temp, err)
				}
				continue
			}
			if err != nil {
				t.Errorf("(%d, %v): unexpected error: %v", n, temp, err)
			}
		}
	}
}

package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ValidateModelDir checks that path exists and is a directory. It does not
// look inside the directory.
func ValidateModelDir(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("model directory %s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("stat model directory: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("model path %s: %w", path, ErrNotADirectory)
	}
	return nil
}

// ValidateSplitAndTempFile rejects temp-file writing combined with tensor
// splitting. splitMaxTensors <= 0 means splitting is off.
func ValidateSplitAndTempFile(splitMaxTensors int, useTempFile bool) error {
	if splitMaxTensors > 0 && useTempFile {
		return fmt.Errorf("%w: cannot use temp file when splitting", ErrConflictingOptions)
	}
	return nil
}

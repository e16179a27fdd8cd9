package convert

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SizeSuffix is a decimal unit accepted at the end of --split-max-size.
type SizeSuffix byte

const (
	SuffixK SizeSuffix = 'K'
	SuffixM SizeSuffix = 'M'
	SuffixG SizeSuffix = 'G'
)

// Multiplier returns the decimal factor for the suffix, or 0 if s is not a unit.
func (s SizeSuffix) Multiplier() int64 {
	switch s {
	case SuffixK:
		return 1000
	case SuffixM:
		return 1000 * 1000
	case SuffixG:
		return 1000 * 1000 * 1000
	default:
		return 0
	}
}

// ParseSplitSize converts N, NK, NM or NG into a byte count.
// Only trailing whitespace is trimmed and the suffix must be uppercase.
// The product is not bounds checked.
func ParseSplitSize(text string) (int64, error) {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)

	num := trimmed
	mult := int64(1)
	if n := len(trimmed); n > 0 {
		if m := SizeSuffix(trimmed[n-1]).Multiplier(); m > 0 {
			mult = m
			num = trimmed[:n-1]
		}
	}

	v, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not N, NK, NM or NG (suffixes: K, M, G)", ErrInvalidFormat, text)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeValue, v)
	}
	return v * mult, nil
}

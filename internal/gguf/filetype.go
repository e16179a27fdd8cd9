package gguf

import (
	"errors"
	"fmt"
)

// KeyFileType is the metadata key holding the container's LlamaFileType.
const KeyFileType = "general.file_type"

var ErrUnknownFileType = errors.New("unknown llama file type")

// LlamaFileType is the file-level storage scheme written into the GGUF header.
// Values follow llama.cpp's LLAMA_FTYPE numbering and must not be renumbered.
type LlamaFileType int32

const (
	AllF32       LlamaFileType = 0
	MostlyF16    LlamaFileType = 1 // except 1d tensors
	MostlyQ4_0   LlamaFileType = 2
	MostlyQ4_1   LlamaFileType = 3
	MostlyQ8_0   LlamaFileType = 7
	MostlyQ5_0   LlamaFileType = 8
	MostlyQ5_1   LlamaFileType = 9
	MostlyQ2K    LlamaFileType = 10
	MostlyQ3KS   LlamaFileType = 11
	MostlyQ3KM   LlamaFileType = 12
	MostlyQ3KL   LlamaFileType = 13
	MostlyQ4KS   LlamaFileType = 14
	MostlyQ4KM   LlamaFileType = 15
	MostlyQ5KS   LlamaFileType = 16
	MostlyQ5KM   LlamaFileType = 17
	MostlyQ6K    LlamaFileType = 18
	MostlyIQ2XXS LlamaFileType = 19
	MostlyIQ2XS  LlamaFileType = 20
	MostlyQ2KS   LlamaFileType = 21
	MostlyIQ3XS  LlamaFileType = 22
	MostlyIQ3XXS LlamaFileType = 23
	MostlyIQ1S   LlamaFileType = 24
	MostlyIQ4NL  LlamaFileType = 25
	MostlyIQ3S   LlamaFileType = 26
	MostlyIQ3M   LlamaFileType = 27
	MostlyIQ2S   LlamaFileType = 28
	MostlyIQ2M   LlamaFileType = 29
	MostlyIQ4XS  LlamaFileType = 30
	MostlyIQ1M   LlamaFileType = 31
	MostlyBF16   LlamaFileType = 32
	MostlyTQ1_0  LlamaFileType = 36
	MostlyTQ2_0  LlamaFileType = 37

	// Guessed is not stored by the writer; it means "infer from the first tensor".
	Guessed LlamaFileType = 1024
)

var fileTypeNames = map[LlamaFileType]string{
	AllF32:       "ALL_F32",
	MostlyF16:    "MOSTLY_F16",
	MostlyQ4_0:   "MOSTLY_Q4_0",
	MostlyQ4_1:   "MOSTLY_Q4_1",
	MostlyQ8_0:   "MOSTLY_Q8_0",
	MostlyQ5_0:   "MOSTLY_Q5_0",
	MostlyQ5_1:   "MOSTLY_Q5_1",
	MostlyQ2K:    "MOSTLY_Q2_K",
	MostlyQ3KS:   "MOSTLY_Q3_K_S",
	MostlyQ3KM:   "MOSTLY_Q3_K_M",
	MostlyQ3KL:   "MOSTLY_Q3_K_L",
	MostlyQ4KS:   "MOSTLY_Q4_K_S",
	MostlyQ4KM:   "MOSTLY_Q4_K_M",
	MostlyQ5KS:   "MOSTLY_Q5_K_S",
	MostlyQ5KM:   "MOSTLY_Q5_K_M",
	MostlyQ6K:    "MOSTLY_Q6_K",
	MostlyIQ2XXS: "MOSTLY_IQ2_XXS",
	MostlyIQ2XS:  "MOSTLY_IQ2_XS",
	MostlyQ2KS:   "MOSTLY_Q2_K_S",
	MostlyIQ3XS:  "MOSTLY_IQ3_XS",
	MostlyIQ3XXS: "MOSTLY_IQ3_XXS",
	MostlyIQ1S:   "MOSTLY_IQ1_S",
	MostlyIQ4NL:  "MOSTLY_IQ4_NL",
	MostlyIQ3S:   "MOSTLY_IQ3_S",
	MostlyIQ3M:   "MOSTLY_IQ3_M",
	MostlyIQ2S:   "MOSTLY_IQ2_S",
	MostlyIQ2M:   "MOSTLY_IQ2_M",
	MostlyIQ4XS:  "MOSTLY_IQ4_XS",
	MostlyIQ1M:   "MOSTLY_IQ1_M",
	MostlyBF16:   "MOSTLY_BF16",
	MostlyTQ1_0:  "MOSTLY_TQ1_0",
	MostlyTQ2_0:  "MOSTLY_TQ2_0",
	Guessed:      "GUESSED",
}

// Int returns the raw header code.
func (t LlamaFileType) Int() int32 {
	return int32(t)
}

func (t LlamaFileType) String() string {
	if name, ok := fileTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ftype(%d)", int32(t))
}

// ParseLlamaFileType validates a code read from an existing header.
// Gaps in the numbering (4-6, 33-35) are retired types and are rejected.
func ParseLlamaFileType(code int32) (LlamaFileType, error) {
	t := LlamaFileType(code)
	if _, ok := fileTypeNames[t]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownFileType, code)
	}
	return t, nil
}

package convert

import (
	"fmt"
	"strings"

	"github.com/samcharles93/hf2gguf/internal/gguf"
)

// Outtype selects the output precision of the converted model.
type Outtype uint8

const (
	OuttypeF32 Outtype = iota
	OuttypeF16
	OuttypeBF16
	OuttypeQ8_0
	OuttypeTQ1_0
	OuttypeTQ2_0
	OuttypeAuto
)

// DefaultOuttype is used when --outtype is not given.
const DefaultOuttype = OuttypeF16

var outtypes = []Outtype{
	OuttypeF32,
	OuttypeF16,
	OuttypeBF16,
	OuttypeQ8_0,
	OuttypeTQ1_0,
	OuttypeTQ2_0,
	OuttypeAuto,
}

// Outtypes returns every output type in menu order.
func Outtypes() []Outtype {
	out := make([]Outtype, len(outtypes))
	copy(out, outtypes)
	return out
}

// ParseOuttype accepts the canonical tokens and their dash-separated forms
// (q8-0 for q8_0). Matching is case-sensitive.
func ParseOuttype(token string) (Outtype, error) {
	switch strings.ReplaceAll(token, "-", "_") {
	case "f32":
		return OuttypeF32, nil
	case "f16":
		return OuttypeF16, nil
	case "bf16":
		return OuttypeBF16, nil
	case "q8_0":
		return OuttypeQ8_0, nil
	case "tq1_0":
		return OuttypeTQ1_0, nil
	case "tq2_0":
		return OuttypeTQ2_0, nil
	case "auto":
		return OuttypeAuto, nil
	default:
		return 0, fmt.Errorf("%w %q (want one of %s)", ErrInvalidOuttype, token, outtypeTokens())
	}
}

func (o Outtype) String() string {
	switch o {
	case OuttypeF32:
		return "f32"
	case OuttypeF16:
		return "f16"
	case OuttypeBF16:
		return "bf16"
	case OuttypeQ8_0:
		return "q8_0"
	case OuttypeTQ1_0:
		return "tq1_0"
	case OuttypeTQ2_0:
		return "tq2_0"
	case OuttypeAuto:
		return "auto"
	default:
		return fmt.Sprintf("outtype(%d)", uint8(o))
	}
}

// FileType maps the output type to the header code written by the pipeline.
// tq2_0 shares MostlyTQ1_0 with tq1_0; see DESIGN.md before changing it.
func (o Outtype) FileType() gguf.LlamaFileType {
	switch o {
	case OuttypeF32:
		return gguf.AllF32
	case OuttypeF16:
		return gguf.MostlyF16
	case OuttypeBF16:
		return gguf.MostlyBF16
	case OuttypeQ8_0:
		return gguf.MostlyQ8_0
	case OuttypeTQ1_0, OuttypeTQ2_0:
		return gguf.MostlyTQ1_0
	default:
		return gguf.Guessed
	}
}

func outtypeTokens() string {
	names := make([]string, len(outtypes))
	for i, o := range outtypes {
		names[i] = o.String()
	}
	return strings.Join(names, ", ")
}

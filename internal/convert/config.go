package convert

import (
	"strconv"
	"strings"

	"github.com/samcharles93/hf2gguf/internal/gguf"
)

// Flag names used in OptionError so messages match the command line.
const (
	FlagModel           = "model"
	FlagOuttype         = "--outtype"
	FlagSplitMaxTensors = "--split-max-tensors"
	FlagSplitMaxSize    = "--split-max-size"
	FlagUseTempFile     = "--use-temp-file"
)

// ftypePlaceholder in --outfile is replaced with the outtype token.
const ftypePlaceholder = "{ftype}"

// Options are the raw command inputs before validation.
type Options struct {
	ModelDir        string
	OutFile         string
	Outtype         string
	SplitMaxTensors int
	SplitMaxSize    string
	UseTempFile     bool

	BigEndian          bool
	NoLazy             bool
	VocabOnly          bool
	DryRun             bool
	NoTensorFirstSplit bool
	Verbose            bool
	Metadata           string
	ModelName          string
}

// Config is the validated conversion request handed to a Pipeline.
type Config struct {
	ModelDir string
	OutFile  string
	Outtype  Outtype
	FileType gguf.LlamaFileType

	BigEndian       bool
	UseTempFile     bool
	SplitMaxTensors int
	SplitMaxSize    int64

	NoLazy             bool
	VocabOnly          bool
	DryRun             bool
	NoTensorFirstSplit bool
	Verbose            bool
	Metadata           string
	ModelName          string
}

// Assemble validates opts and returns the resolved configuration. It stops at
// the first failure: model dir, split/temp-file conflict, split size, outtype.
func Assemble(opts Options) (Config, error) {
	if err := ValidateModelDir(opts.ModelDir); err != nil {
		return Config{}, optionError(FlagModel, opts.ModelDir, err)
	}
	if err := ValidateSplitAndTempFile(opts.SplitMaxTensors, opts.UseTempFile); err != nil {
		return Config{}, optionError(FlagSplitMaxTensors, strconv.Itoa(opts.SplitMaxTensors), err)
	}

	sizeText := opts.SplitMaxSize
	if sizeText == "" {
		sizeText = "0"
	}
	splitSize, err := ParseSplitSize(sizeText)
	if err != nil {
		return Config{}, optionError(FlagSplitMaxSize, opts.SplitMaxSize, err)
	}

	ot := DefaultOuttype
	if opts.Outtype != "" {
		ot, err = ParseOuttype(opts.Outtype)
		if err != nil {
			return Config{}, optionError(FlagOuttype, opts.Outtype, err)
		}
	}

	return Config{
		ModelDir:           opts.ModelDir,
		OutFile:            resolveOutFile(opts.ModelDir, opts.OutFile, ot),
		Outtype:            ot,
		FileType:           ot.FileType(),
		BigEndian:          opts.BigEndian,
		UseTempFile:        opts.UseTempFile,
		SplitMaxTensors:    opts.SplitMaxTensors,
		SplitMaxSize:       splitSize,
		NoLazy:             opts.NoLazy,
		VocabOnly:          opts.VocabOnly,
		DryRun:             opts.DryRun,
		NoTensorFirstSplit: opts.NoTensorFirstSplit,
		Verbose:            opts.Verbose,
		Metadata:           opts.Metadata,
		ModelName:          opts.ModelName,
	}, nil
}

// resolveOutFile falls back to the model directory when no outfile is given.
// TODO: derive a <name>-<ftype>.gguf default once the writer defines naming.
func resolveOutFile(modelDir, outFile string, ot Outtype) string {
	if outFile == "" {
		return modelDir
	}
	return strings.ReplaceAll(outFile, ftypePlaceholder, ot.String())
}

// Endianness reports the byte order the output should be written in.
func (c Config) Endianness() string {
	if c.BigEndian {
		return "big"
	}
	return "little"
}

// Splitting reports whether either split limit is active.
func (c Config) Splitting() bool {
	return c.SplitMaxTensors > 0 || c.SplitMaxSize > 0
}

package main

import "github.com/urfave/cli/v3"

const (
	flagOuttype              = "outtype"
	flagOutfile              = "outfile"
	flagSplitMaxTensors      = "split-max-tensors"
	flagSplitMaxSize         = "split-max-size"
	flagUseTempFile          = "use-temp-file"
	flagPrintSupportedModels = "print-supported-models"
	flagLogLevel             = "log-level"
	flagLogFormat            = "log-format"
	flagConfig               = "config"
)

// cliOptions receives flag values. Each app gets its own copy so repeated
// runs in tests do not share state.
type cliOptions struct {
	outfile            string
	outtype            string
	splitMaxTensors    int
	splitMaxSize       string
	useTempFile        bool
	bigEndian          bool
	noLazy             bool
	vocabOnly          bool
	dryRun             bool
	noTensorFirstSplit bool
	verbose            bool
	metadata           string
	modelName          string
	printSupported     bool

	logLevel   string
	logFormat  string
	configFile string
}

func conversionFlags(o *cliOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        flagOutfile,
			Usage:       "path to write to; default: based on input. {ftype} will be replaced by the outtype",
			Destination: &o.outfile,
		},
		&cli.StringFlag{
			Name: flagOuttype,
			Usage: "f32 for float32, f16 for float16, bf16 for bfloat16, q8_0 for Q8_0, " +
				"tq1_0 or tq2_0 for ternary, auto for the highest-fidelity 16-bit type of the first tensor",
			Value:       "f16",
			Destination: &o.outtype,
		},
		&cli.BoolFlag{Name: "vocab-only", Usage: "extract only the vocab", Destination: &o.vocabOnly},
		&cli.BoolFlag{Name: "bigendian", Usage: "model is executed on a big endian machine", Destination: &o.bigEndian},
		&cli.BoolFlag{
			Name:        flagUseTempFile,
			Usage:       "use a temp file while processing (helps when running out of memory)",
			Destination: &o.useTempFile,
		},
		&cli.BoolFlag{
			Name:        "no-lazy",
			Usage:       "compute all outputs before writing (use if lazy evaluation is broken)",
			Destination: &o.noLazy,
		},
		&cli.StringFlag{Name: "model-name", Usage: "name of the model", Destination: &o.modelName},
		&cli.BoolFlag{Name: "verbose", Usage: "increase output verbosity", Destination: &o.verbose},
		&cli.IntFlag{
			Name:        flagSplitMaxTensors,
			Usage:       "max tensors in each split (0 disables)",
			Value:       0,
			Destination: &o.splitMaxTensors,
		},
		&cli.StringFlag{
			Name:        flagSplitMaxSize,
			Usage:       "max size per split N(K|M|G)",
			Value:       "0",
			Destination: &o.splitMaxSize,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "only print out a split plan and exit, without writing any new files",
			Destination: &o.dryRun,
		},
		&cli.BoolFlag{
			Name:        "no-tensor-first-split",
			Usage:       "do not add tensors to the first split",
			Destination: &o.noTensorFirstSplit,
		},
		&cli.StringFlag{
			Name:        "metadata",
			Usage:       "path to an authorship metadata override file",
			Destination: &o.metadata,
		},
		&cli.BoolFlag{
			Name:        flagPrintSupportedModels,
			Usage:       "print the supported models and exit",
			Destination: &o.printSupported,
		},
	}
}

func loggingFlags(o *cliOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        flagLogLevel,
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("HF2GGUF_LOG_LEVEL"),
			Destination: &o.logLevel,
		},
		&cli.StringFlag{
			Name:        flagLogFormat,
			Usage:       "log format (pretty, text, json)",
			Value:       "pretty",
			Destination: &o.logFormat,
		},
		&cli.StringFlag{
			Name:        flagConfig,
			Usage:       "path to config.yaml with flag defaults",
			Sources:     cli.EnvVars("HF2GGUF_CONFIG"),
			Destination: &o.configFile,
		},
	}
}

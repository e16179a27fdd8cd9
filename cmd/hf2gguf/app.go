package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/hf2gguf/internal/convert"
	"github.com/samcharles93/hf2gguf/internal/logger"
	"github.com/samcharles93/hf2gguf/internal/model"
	"github.com/samcharles93/hf2gguf/internal/version"
)

// exitUsage matches the exit status of argument parsers for bad input.
const exitUsage = 2

type appEnv struct {
	Stdout     io.Writer
	Stderr     io.Writer
	ConfigPath string
	Registry   *model.Registry
	// Pipeline defaults to a convert.Reporter on Stdout.
	Pipeline convert.Pipeline
}

func newApp(env appEnv) *cli.Command {
	if env.Stdout == nil {
		env.Stdout = os.Stdout
	}
	if env.Stderr == nil {
		env.Stderr = os.Stderr
	}
	if env.Registry == nil {
		env.Registry = model.DefaultRegistry()
	}
	if env.Pipeline == nil {
		env.Pipeline = &convert.Reporter{Out: env.Stdout, Registry: env.Registry}
	}

	var o cliOptions
	flags := append(conversionFlags(&o), loggingFlags(&o)...)

	return &cli.Command{
		Name:      "hf2gguf",
		Usage:     "Convert a Hugging Face model directory to a GGUF file",
		ArgsUsage: "<model>",
		Version:   version.String(),
		Writer:    env.Stdout,
		ErrWriter: env.Stderr,
		Flags:     flags,
		// main owns process exit so Run stays callable from tests.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return cli.Exit(fmt.Sprintf("error: %v", err), exitUsage)
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			path, explicit := env.ConfigPath, false
			if c.IsSet(flagConfig) {
				path, explicit = o.configFile, true
			}
			fileCfg, err := loadConfig(path, explicit)
			if err != nil {
				return ctx, cli.Exit(fmt.Sprintf("error: %v", err), exitUsage)
			}
			applyConfig(c, fileCfg, &o)

			level := logger.ParseLevel(o.logLevel)
			if o.verbose {
				level = slog.LevelDebug
			}
			log, err := logger.Open(env.Stderr, o.logFormat, level)
			if err != nil {
				return ctx, cli.Exit(fmt.Sprintf("error: --%s: %v", flagLogFormat, err), exitUsage)
			}
			log = log.With("run_id", uuid.NewString())
			return logger.WithContext(ctx, log), nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if o.printSupported {
				for _, name := range env.Registry.Names() {
					if _, err := fmt.Fprintln(env.Stdout, name); err != nil {
						return err
					}
				}
				return nil
			}

			if c.NArg() == 0 {
				return cli.Exit("error: the following arguments are required: model", exitUsage)
			}
			if c.NArg() > 1 {
				return cli.Exit(fmt.Sprintf("error: unexpected arguments: %v", c.Args().Tail()), exitUsage)
			}

			cfg, err := convert.Assemble(convert.Options{
				ModelDir:           c.Args().First(),
				OutFile:            o.outfile,
				Outtype:            o.outtype,
				SplitMaxTensors:    o.splitMaxTensors,
				SplitMaxSize:       o.splitMaxSize,
				UseTempFile:        o.useTempFile,
				BigEndian:          o.bigEndian,
				NoLazy:             o.noLazy,
				VocabOnly:          o.vocabOnly,
				DryRun:             o.dryRun,
				NoTensorFirstSplit: o.noTensorFirstSplit,
				Verbose:            o.verbose,
				Metadata:           o.metadata,
				ModelName:          o.modelName,
			})
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), exitUsage)
			}

			log := logger.FromContext(ctx)
			log.Debug("configuration resolved",
				"model", cfg.ModelDir,
				"outfile", cfg.OutFile,
				"outtype", cfg.Outtype.String(),
				"file_type", cfg.FileType.String(),
			)
			if cfg.OutFile == cfg.ModelDir {
				log.Warn("no --outfile given; output path defaults to the model directory", "path", cfg.OutFile)
			}

			if err := env.Pipeline.Convert(ctx, cfg); err != nil {
				return cli.Exit(fmt.Sprintf("error: convert: %v", err), 1)
			}
			return nil
		},
	}
}

package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/samcharles93/hf2gguf/internal/gguf"
	"github.com/samcharles93/hf2gguf/internal/logger"
	"github.com/samcharles93/hf2gguf/internal/model"
)

// Pipeline performs the conversion described by a validated Config. All
// reading of weights and writing of the GGUF container happens behind it.
type Pipeline interface {
	Convert(ctx context.Context, cfg Config) error
}

// Reporter is a Pipeline that prints the resolved configuration instead of
// converting. It reads config.json to report the architecture but never opens
// weight files.
type Reporter struct {
	Out      io.Writer
	Registry *model.Registry
}

type reportRow struct {
	key string
	val any
}

// Convert writes one "key: value" line per Config field to r.Out.
func (r *Reporter) Convert(ctx context.Context, cfg Config) error {
	log := logger.FromContext(ctx)

	if r.Registry != nil {
		r.reportArchitecture(log, cfg.ModelDir)
	}

	rows := []reportRow{
		{"model", cfg.ModelDir},
		{"outfile", cfg.OutFile},
		{"outtype", cfg.Outtype},
		{gguf.KeyFileType, fmt.Sprintf("%s (%d)", cfg.FileType, cfg.FileType.Int())},
		{"endianness", cfg.Endianness()},
		{"use_temp_file", cfg.UseTempFile},
		{"split_max_tensors", cfg.SplitMaxTensors},
		{"split_max_size", cfg.SplitMaxSize},
		{"no_tensor_first_split", cfg.NoTensorFirstSplit},
		{"no_lazy", cfg.NoLazy},
		{"vocab_only", cfg.VocabOnly},
		{"dry_run", cfg.DryRun},
		{"verbose", cfg.Verbose},
	}
	if cfg.ModelName != "" {
		rows = append(rows, reportRow{"model_name", cfg.ModelName})
	}
	if cfg.Metadata != "" {
		rows = append(rows, reportRow{"metadata", cfg.Metadata})
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(r.Out, "%-22s %v\n", row.key+":", row.val); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

func (r *Reporter) reportArchitecture(log logger.Logger, dir string) {
	hf, err := model.ReadHFConfig(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("no config.json in model directory", "dir", dir)
		} else {
			log.Warn("could not read config.json", "dir", dir, "err", err)
		}
		return
	}
	l, err := r.Registry.Detect(hf)
	if err != nil {
		log.Warn("model architecture is not supported", "architectures", hf.Architectures, "err", err)
		return
	}
	log.Info("detected architecture", "arch", l.Arch, "gguf_arch", l.GGUFArch, "caps", l.Caps.String())
}

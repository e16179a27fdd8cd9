package convert

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samcharles93/hf2gguf/internal/logger"
	"github.com/samcharles93/hf2gguf/internal/model"
)

func TestReporterConvert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	raw := `{"model_type":"qwen3","architectures":["Qwen3ForCausalLM"]}`
	if err := os.WriteFile(filepath.Join(dir, model.HFConfigFile), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Assemble(Options{ModelDir: dir, Outtype: "bf16", SplitMaxSize: "1K", ModelName: "tiny"})
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}

	var logs, out bytes.Buffer
	ctx := logger.WithContext(context.Background(), logger.New(slog.NewJSONHandler(&logs, nil)))
	r := &Reporter{Out: &out, Registry: model.DefaultRegistry()}
	if err := r.Convert(ctx, cfg); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	report := out.String()
	for _, want := range []string{"outtype:", "bf16", "general.file_type:", "MOSTLY_BF16 (32)", "split_max_size:", "1000", "model_name:", "tiny"} {
		if !strings.Contains(report, want) {
			t.Errorf("expected %q in report, got:\n%s", want, report)
		}
	}
	if strings.Contains(report, "metadata:") {
		t.Errorf("metadata row should be omitted when unset:\n%s", report)
	}
	if !strings.Contains(logs.String(), `"gguf_arch":"qwen3"`) {
		t.Errorf("expected detected architecture in logs, got: %s", logs.String())
	}
}

func TestReporterWarnsWithoutConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Assemble(Options{ModelDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	var logs, out bytes.Buffer
	ctx := logger.WithContext(context.Background(), logger.New(slog.NewJSONHandler(&logs, nil)))
	r := &Reporter{Out: &out, Registry: model.DefaultRegistry()}
	if err := r.Convert(ctx, cfg); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !strings.Contains(logs.String(), "no config.json") {
		t.Fatalf("expected warning about missing config.json, got: %s", logs.String())
	}
	if !strings.Contains(out.String(), "f16") {
		t.Fatalf("expected report even without config.json, got: %s", out.String())
	}
}

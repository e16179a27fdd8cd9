package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// HFConfigFile is the Hugging Face model config inside a model directory.
const HFConfigFile = "config.json"

// HFConfig holds the config.json fields needed to pick a converter.
type HFConfig struct {
	ModelType     string   `json:"model_type"`
	Architectures []string `json:"architectures"`
	VocabSize     int      `json:"vocab_size"`
	HiddenSize    int      `json:"hidden_size"`
	NumLayers     int      `json:"num_hidden_layers"`
	TorchDType    string   `json:"torch_dtype"`
}

// ParseHFConfig decodes raw config.json bytes.
func ParseHFConfig(raw []byte) (*HFConfig, error) {
	var cfg HFConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", HFConfigFile, err)
	}
	return &cfg, nil
}

// ReadHFConfig loads dir/config.json.
func ReadHFConfig(dir string) (*HFConfig, error) {
	raw, err := os.ReadFile(filepath.Join(dir, HFConfigFile))
	if err != nil {
		return nil, err
	}
	return ParseHFConfig(raw)
}

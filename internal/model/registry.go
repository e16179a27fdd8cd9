package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedArchitecture = errors.New("unsupported architecture")
	ErrDuplicateArchitecture   = errors.New("architecture already registered")
)

// Capability describes what a converter can emit for an architecture.
type Capability uint8

const (
	CapVocab Capability = 1 << iota
	CapTensors
	CapMoE
)

// Has reports whether every bit of flag is set.
func (c Capability) Has(flag Capability) bool {
	return c&flag == flag
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(CapVocab) {
		parts = append(parts, "vocab")
	}
	if c.Has(CapTensors) {
		parts = append(parts, "tensors")
	}
	if c.Has(CapMoE) {
		parts = append(parts, "moe")
	}
	return strings.Join(parts, "|")
}

// Loader describes how one Hugging Face architecture class is converted.
type Loader struct {
	// Arch is the class name found in config.json "architectures".
	Arch string
	// GGUFArch is the value written to general.architecture.
	GGUFArch string
	Caps     Capability
}

// Registry maps architecture class names to loaders. The zero value is empty
// and ready to use.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry creates a registry holding loaders. Duplicate names fail.
func NewRegistry(loaders ...Loader) (*Registry, error) {
	r := &Registry{}
	for _, l := range loaders {
		if err := r.Register(l); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds l under its trimmed Arch name.
func (r *Registry) Register(l Loader) error {
	name := strings.TrimSpace(l.Arch)
	if name == "" {
		return errors.New("register: empty architecture name")
	}
	if r.loaders == nil {
		r.loaders = make(map[string]Loader)
	}
	if _, ok := r.loaders[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateArchitecture, name)
	}
	l.Arch = name
	r.loaders[name] = l
	return nil
}

// Lookup returns the loader registered for arch.
func (r *Registry) Lookup(arch string) (Loader, bool) {
	l, ok := r.loaders[arch]
	return l, ok
}

// Names returns the registered architecture class names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.loaders))
	for name := range r.loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect returns the loader for the first registered entry of
// cfg.Architectures.
func (r *Registry) Detect(cfg *HFConfig) (Loader, error) {
	if cfg == nil {
		return Loader{}, errors.New("nil config")
	}
	if len(cfg.Architectures) == 0 {
		return Loader{}, fmt.Errorf("%w: config.json has no architectures (model_type=%q)", ErrUnsupportedArchitecture, cfg.ModelType)
	}
	for _, arch := range cfg.Architectures {
		if l, ok := r.Lookup(arch); ok {
			return l, nil
		}
	}
	return Loader{}, fmt.Errorf("%w: %v", ErrUnsupportedArchitecture, cfg.Architectures)
}

var builtinLoaders = []Loader{
	{Arch: "LlamaForCausalLM", GGUFArch: "llama", Caps: CapVocab | CapTensors},
	{Arch: "MistralForCausalLM", GGUFArch: "llama", Caps: CapVocab | CapTensors},
	{Arch: "Mistral3ForConditionalGeneration", GGUFArch: "llama", Caps: CapVocab | CapTensors},
	{Arch: "Qwen3ForCausalLM", GGUFArch: "qwen3", Caps: CapVocab | CapTensors},
	{Arch: "Gemma3ForCausalLM", GGUFArch: "gemma3", Caps: CapVocab | CapTensors},
	{Arch: "Gemma3ForConditionalGeneration", GGUFArch: "gemma3", Caps: CapVocab | CapTensors},
	{Arch: "GraniteForCausalLM", GGUFArch: "granite", Caps: CapVocab | CapTensors},
	{Arch: "Lfm2ForCausalLM", GGUFArch: "lfm2", Caps: CapVocab | CapTensors},
	{Arch: "AfmoeForCausalLM", GGUFArch: "afmoe", Caps: CapVocab | CapTensors | CapMoE},
}

// DefaultRegistry builds a new registry holding the built-in architectures.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(builtinLoaders...)
	if err != nil {
		panic(err)
	}
	return r
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Tokenizer counts model tokens in decoded file content.
type Tokenizer interface {
	CountTokens(text string) int
	Close() // Release backend resources, if any
}

// --- Tiktoken Wrapper ---

type TiktokenWrapper struct {
	ttk *tiktoken.Tiktoken
}

func (w *TiktokenWrapper) CountTokens(text string) int {
	if w.ttk == nil {
		return 0
	}
	return len(w.ttk.EncodeOrdinary(text))
}

func (w *TiktokenWrapper) Close() {
	// No explicit close needed for tiktoken-go
}

// --- HuggingFace (sugarme) Wrapper ---

type HFTokenizerWrapper struct {
	htk  *hf.Tokenizer
	warn io.Writer
}

func (w *HFTokenizerWrapper) CountTokens(text string) int {
	if w.htk == nil {
		return 0
	}
	en, err := w.htk.EncodeSingle(text)
	if err != nil {
		fmt.Fprintf(w.warn, "Warning: HF tokenizer failed to encode text: %v\n", err)
		return 0
	}
	return len(en.Tokens)
}

func (w *HFTokenizerWrapper) Close() {
	// sugarme/tokenizer has no Close/Free method
}

// --- Tokenizer Loading Logic ---

const (
	defaultTokenizerType = "tiktoken"
	defaultTiktokenModel = "gpt-4o" // Default if tokenizer is tiktoken
	defaultHFModel       = "gpt2"   // Default if tokenizer is huggingface and no model specified
)

// tokenizerConfig selects a tokenizer backend and model.
type tokenizerConfig struct {
	Type  string // tiktoken or huggingface
	Model string // Empty picks the backend default
	File  string // Local tokenizer.json, huggingface only
}

// getTokenizer returns the tokenizer selected by cfg. Warnings go to warn.
func getTokenizer(cfg tokenizerConfig, warn io.Writer) (Tokenizer, error) {
	if warn == nil {
		warn = os.Stderr
	}

	switch strings.ToLower(cfg.Type) {
	case "", "tiktoken":
		return loadTiktoken(cfg.Model, warn)
	case "huggingface":
		return loadHuggingFace(cfg.Model, cfg.File, warn)
	default:
		return nil, fmt.Errorf("unsupported tokenizer type: %s. Use 'tiktoken' or 'huggingface'", cfg.Type)
	}
}

// loadTiktoken falls back to the default model when tiktoken does not know
// the requested name.
func loadTiktoken(model string, warn io.Writer) (Tokenizer, error) {
	if model == "" {
		model = defaultTiktokenModel
	}

	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		if model == defaultTiktokenModel {
			return nil, fmt.Errorf("failed to get tiktoken encoding for model '%s': %w", model, err)
		}
		fmt.Fprintf(warn, "Warning: Tiktoken model '%s' not found, falling back to default '%s'. Error: %v\n", model, defaultTiktokenModel, err)
		tke, err = tiktoken.EncodingForModel(defaultTiktokenModel)
		if err != nil {
			return nil, fmt.Errorf("failed to get tiktoken encoding for default model '%s': %w", defaultTiktokenModel, err)
		}
	}
	return &TiktokenWrapper{ttk: tke}, nil
}

// loadHuggingFace loads a tokenizer.json from file, or from the Hub cache
// for model when no file is given.
func loadHuggingFace(model, file string, warn io.Writer) (Tokenizer, error) {
	if file != "" {
		ttk, err := pretrained.FromFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load tokenizer from file %s: %w", file, err)
		}
		return &HFTokenizerWrapper{htk: ttk, warn: warn}, nil
	}

	if model == "" {
		model = defaultHFModel
	}
	fmt.Fprintf(warn, "Loading HuggingFace tokenizer for model: %s (this may download files)\n", model)

	configFilePath, err := hf.CachedPath(model, "tokenizer.json")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache path for model %s: %w", model, err)
	}
	ttk, err := pretrained.FromFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pretrained tokenizer for model %s (from %s): %w", model, configFilePath, err)
	}
	return &HFTokenizerWrapper{htk: ttk, warn: warn}, nil
}

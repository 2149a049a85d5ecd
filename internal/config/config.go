package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Describer   DescriberConfig   `yaml:"describer"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Output      OutputConfig      `yaml:"output"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type TranscriberConfig struct {
	ModelID      string `yaml:"model_id"`
	BaseURL      string `yaml:"base_url"`
	ExtractAudio bool   `yaml:"extract_audio"`
}

type DescriberConfig struct {
	Model           string `yaml:"model"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
	PromptPath      string `yaml:"prompt_path"`
}

type TranscriptConfig struct {
	MaxChars int `yaml:"max_chars"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type PathsConfig struct {
	Input string `yaml:"input"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultMaxChars is the transcript character budget kept safely inside the
// generation model's context window.
const DefaultMaxChars = 150000

// Load reads the YAML config at path. A missing file is not an error: every
// setting has a default, and the file only overrides them. API keys never live
// here; see Secrets.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Transcriber.ModelID == "" {
		c.Transcriber.ModelID = "scribe_v1"
	}
	if c.Transcriber.BaseURL == "" {
		c.Transcriber.BaseURL = "https://api.elevenlabs.io"
	}
	if c.Describer.Model == "" {
		c.Describer.Model = "gemini-2.5-flash"
	}
	if c.Describer.MaxOutputTokens == 0 {
		c.Describer.MaxOutputTokens = 1024
	}
	if c.Describer.MaxOutputTokens < 0 {
		return fmt.Errorf("describer.max_output_tokens must be positive")
	}
	// The generation API takes an int32 bound.
	if c.Describer.MaxOutputTokens > math.MaxInt32 {
		return fmt.Errorf("describer.max_output_tokens must be at most %d", math.MaxInt32)
	}
	if c.Transcript.MaxChars == 0 {
		c.Transcript.MaxChars = DefaultMaxChars
	}
	if c.Transcript.MaxChars < 0 {
		return fmt.Errorf("transcript.max_chars must be positive")
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

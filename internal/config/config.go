package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// CutoffLayout is the date format of processing.cutoff.
const CutoffLayout = "2006-01-02"

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Processing  ProcessingConfig  `yaml:"processing"`
	Reference   ReferenceConfig   `yaml:"reference"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type ProcessingConfig struct {
	Extensions   []string `yaml:"extensions"`
	Cutoff       string   `yaml:"cutoff"`
	MaxSentences int      `yaml:"max_sentences"`
	Format       string   `yaml:"format"`
}

type ReferenceConfig struct {
	Host        string `yaml:"host"`
	Translation string `yaml:"translation"`
	TablePath   string `yaml:"table_path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Color bool   `yaml:"color"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

// Load reads a YAML config file, validates it and fills defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must be at least 1")
	}
	if c.Processing.MaxSentences < 0 {
		return fmt.Errorf("processing.max_sentences must be at least 1")
	}
	if c.Processing.Cutoff != "" {
		if _, err := time.ParseInLocation(CutoffLayout, c.Processing.Cutoff, time.Local); err != nil {
			return fmt.Errorf("processing.cutoff must be YYYY-MM-DD: %w", err)
		}
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if len(c.Processing.Extensions) == 0 {
		c.Processing.Extensions = []string{".mp4"}
	}
	for i, ext := range c.Processing.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Processing.Extensions[i] = ext
	}
	if c.Processing.MaxSentences == 0 {
		c.Processing.MaxSentences = 4
	}
	if c.Processing.Format == "" {
		c.Processing.Format = "markdown"
	}
	if c.Reference.Host == "" {
		c.Reference.Host = "https://www.blueletterbible.org"
	}
	if c.Reference.Translation == "" {
		c.Reference.Translation = "kjv"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}

// CutoffTime returns the parsed cutoff date at local midnight, or the zero
// time when no cutoff is configured.
func (c *Config) CutoffTime() time.Time {
	if c.Processing.Cutoff == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(CutoffLayout, c.Processing.Cutoff, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

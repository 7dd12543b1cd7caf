package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the pipeline configuration file. A missing file is not an
// error: the defaults describe a complete working pipeline.
func Load(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No pipeline configuration file, using defaults", "path", path)
			setDefaults(&config)
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &config, nil
}

func setDefaults(config *Config) {
	if config.Dirs.Digest == "" {
		config.Dirs.Digest = "fpl_summaries"
	}
	if config.Dirs.Prompts == "" {
		config.Dirs.Prompts = "social_images"
	}
	if config.Dirs.ImagesOut == "" {
		config.Dirs.ImagesOut = "social_images_out"
	}
	if config.Dirs.Audio == "" {
		config.Dirs.Audio = "social_audio"
	}
	if config.Dirs.Data == "" {
		config.Dirs.Data = "data"
	}
	if config.Dirs.Out == "" {
		config.Dirs.Out = "out"
	}
	if config.Fetch.Timeout == 0 {
		config.Fetch.Timeout = 30 // seconds
	}
	if config.Fetch.PauseMillis == 0 {
		config.Fetch.PauseMillis = 500
	}
	if config.Image.Model == "" {
		config.Image.Model = "gpt-image-1"
	}
	if config.Image.Size == "" {
		config.Image.Size = "1024x1024"
	}
	if config.Image.Retries == 0 {
		config.Image.Retries = 3
	}
	if config.Speech.Model == "" {
		config.Speech.Model = "gpt-4o-mini-tts"
	}
	if config.Speech.Voice == "" {
		config.Speech.Voice = "alloy"
	}
	if config.Speech.Format == "" {
		config.Speech.Format = "mp3"
	}
	if config.Mail.Port == 0 {
		config.Mail.Port = 587
	}
}

func validate(config *Config) error {
	if config.Fetch.Timeout < 0 {
		return fmt.Errorf("fetch timeout must be non-negative")
	}
	if config.Fetch.PauseMillis < 0 {
		return fmt.Errorf("pause must be non-negative")
	}
	if config.Image.Retries < 1 {
		return fmt.Errorf("image retries must be at least 1")
	}

	validSizes := map[string]bool{
		"512x512":   true,
		"1024x1024": true,
		"2048x2048": true,
	}
	if !validSizes[config.Image.Size] {
		return fmt.Errorf("invalid image size: %s", config.Image.Size)
	}

	return nil
}

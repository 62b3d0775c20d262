// Package config loads pipeline configuration: defaults in code, an
// optional config.yaml, and VOICE2SIGN_* environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Service struct {
	URL string `mapstructure:"url"`
}

type Services struct {
	ASR     Service `mapstructure:"asr"`
	NLP     Service `mapstructure:"nlp"`
	Emotion Service `mapstructure:"emotion"`
}

type OpenAI struct {
	APIKey string `mapstructure:"api_key"`
}

type Transcriber struct {
	Model    string `mapstructure:"model"`
	Language string `mapstructure:"language"`
}

type Gloss struct {
	KeepNegation bool   `mapstructure:"keep_negation"`
	Wordlist     string `mapstructure:"wordlist"`
}

type Emotion struct {
	Enabled bool `mapstructure:"enabled"`
}

type Audio struct {
	SampleRate int `mapstructure:"sample_rate"`
}

type Paths struct {
	Outputs string `mapstructure:"outputs"`
	Tmp     string `mapstructure:"tmp"`
	Cache   string `mapstructure:"cache"`
	Dataset string `mapstructure:"dataset"`
}

type Root struct {
	LogLevel    string      `mapstructure:"log_level"`
	Transcriber Transcriber `mapstructure:"transcriber"`
	OpenAI      OpenAI      `mapstructure:"openai"`
	Services    Services    `mapstructure:"services"`
	Gloss       Gloss       `mapstructure:"gloss"`
	Emotion     Emotion     `mapstructure:"emotion"`
	Audio       Audio       `mapstructure:"audio"`
	Paths       Paths       `mapstructure:"paths"`
}

// Load reads config.yaml from the working directory or ./config, applies
// environment overrides, and falls back to defaults for anything unset.
// A missing config file is not an error.
func Load() (*Root, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("VOICE2SIGN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("transcriber.model", "base")
	v.SetDefault("transcriber.language", "")
	// Every key needs a default: AutomaticEnv only surfaces env values
	// through Unmarshal for keys viper already knows about.
	v.SetDefault("openai.api_key", "")
	v.SetDefault("services.asr.url", "")
	v.SetDefault("services.nlp.url", "")
	v.SetDefault("services.emotion.url", "")
	v.SetDefault("gloss.keep_negation", true)
	v.SetDefault("gloss.wordlist", "")
	v.SetDefault("emotion.enabled", false)
	v.SetDefault("audio.sample_rate", 16000)
	v.SetDefault("paths.outputs", "output")
	v.SetDefault("paths.tmp", "output/tmp")
	v.SetDefault("paths.cache", "cache")
	v.SetDefault("paths.dataset", "datasets/data")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

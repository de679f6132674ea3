package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minuta/pkg/adapter"
	"github.com/m-mizutani/minuta/pkg/model"
	"github.com/m-mizutani/minuta/pkg/repository"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// config holds configuration values
type config struct {
	// Storage
	meetingsDir string
	bucket      string

	// Adapters
	geminiAPIKey string
	geminiModel  string

	// Logging
	logLevel  string
	logFormat string

	// Optional YAML config file
	configPath string
}

// fileConfig is the optional YAML configuration file. It narrows or extends
// the supported-language table and overrides the generative model.
type fileConfig struct {
	Languages map[string]string `yaml:"languages"`
	Model     string            `yaml:"model"`
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "meetings-dir",
			Aliases:     []string{"d"},
			Usage:       "Directory holding per-meeting artifacts",
			Value:       "./meetings",
			Sources:     cli.EnvVars("MINUTA_MEETINGS_DIR"),
			Destination: &cfg.meetingsDir,
		},
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "Cloud Storage bucket for meeting artifacts (overrides meetings-dir)",
			Sources:     cli.EnvVars("MINUTA_BUCKET"),
			Destination: &cfg.bucket,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("MINUTA_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json)",
			Value:       "console",
			Sources:     cli.EnvVars("MINUTA_LOG_FORMAT"),
			Destination: &cfg.logFormat,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to YAML config file",
			Sources:     cli.EnvVars("MINUTA_CONFIG"),
			Destination: &cfg.configPath,
		},
	}
}

// geminiFlags returns flags for Gemini configuration with destination config
func geminiFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Sources:     cli.EnvVars("GEMINI_API_KEY"),
			Destination: &cfg.geminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Generative model for notes extraction and Q&A",
			Sources:     cli.EnvVars("GEMINI_MODEL"),
			Destination: &cfg.geminiModel,
		},
	}
}

// loadFile reads the optional YAML config file. A missing flag yields an
// empty config, not an error.
func (cfg *config) loadFile() (*fileConfig, error) {
	if cfg.configPath == "" {
		return &fileConfig{}, nil
	}

	data, err := os.ReadFile(cfg.configPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", cfg.configPath))
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", cfg.configPath))
	}
	return &fc, nil
}

// languages builds the supported-language table, applying the config file
// override when present.
func (cfg *config) languages(fc *fileConfig) model.LanguageTable {
	if len(fc.Languages) == 0 {
		return model.DefaultLanguages()
	}
	table := model.LanguageTable{}
	for code, name := range fc.Languages {
		table[model.Language(code)] = name
	}
	return table
}

// newGemini creates a new Gemini adapter instance
func (cfg *config) newGemini(ctx context.Context, fc *fileConfig) (adapter.Gemini, error) {
	if cfg.geminiAPIKey == "" {
		return nil, goerr.New("gemini-api-key is required")
	}

	var opts []adapter.GeminiOption
	generativeModel := cfg.geminiModel
	if generativeModel == "" {
		generativeModel = fc.Model
	}
	if generativeModel != "" {
		opts = append(opts, adapter.WithGenerativeModel(generativeModel))
	}

	gemini, err := adapter.NewGemini(ctx, cfg.geminiAPIKey, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create gemini adapter")
	}
	return gemini, nil
}

// newStorage creates the artifact storage backend: Cloud Storage when a
// bucket is configured, the local meetings directory otherwise.
func (cfg *config) newStorage(ctx context.Context) (adapter.Storage, error) {
	if cfg.bucket != "" {
		storage, err := adapter.NewGCSStorage(ctx, cfg.bucket)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GCS storage")
		}
		return storage, nil
	}

	storage, err := adapter.NewLocalStorage(cfg.meetingsDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create local storage")
	}
	return storage, nil
}

// newRepository creates a new artifact repository instance
func (cfg *config) newRepository(ctx context.Context) (repository.Repository, error) {
	storage, err := cfg.newStorage(ctx)
	if err != nil {
		return nil, err
	}
	return repository.New(storage), nil
}

// Package config loads geocluster settings and bootstraps the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kyleyasumiishi/geocluster/closestpair"
)

// Config holds the full application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Cluster ClusterConfig `yaml:"cluster" mapstructure:"cluster"`
	Sweep   SweepConfig   `yaml:"sweep" mapstructure:"sweep"`
	Random  RandomConfig  `yaml:"random" mapstructure:"random"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ClusterConfig configures a single clustering run.
type ClusterConfig struct {
	K          int    `yaml:"k" mapstructure:"k"`
	Iterations int    `yaml:"iterations" mapstructure:"iterations"`
	Finder     string `yaml:"finder" mapstructure:"finder"`
}

// SweepConfig bounds the k range of a distortion sweep.
type SweepConfig struct {
	MinK int `yaml:"min_k" mapstructure:"min_k"`
	MaxK int `yaml:"max_k" mapstructure:"max_k"`
}

// RandomConfig configures generated point sets.
type RandomConfig struct {
	Seed  int64 `yaml:"seed" mapstructure:"seed"`
	Count int   `yaml:"count" mapstructure:"count"`
}

// ReportConfig configures chart output.
type ReportConfig struct {
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("geocluster")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GEOCLUSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("cluster.k", 9)
	v.SetDefault("cluster.iterations", 5)
	v.SetDefault("cluster.finder", closestpair.NameFast)
	v.SetDefault("sweep.min_k", 6)
	v.SetDefault("sweep.max_k", 20)
	v.SetDefault("random.seed", 1)
	v.SetDefault("random.count", 100)
	v.SetDefault("report.output_dir", "plots")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate reports every setting that no command could run with.
func (c *Config) Validate() error {
	var problems []string
	if c.Cluster.K < 1 {
		problems = append(problems, "cluster.k must be >= 1")
	}
	if c.Cluster.Iterations < 0 {
		problems = append(problems, "cluster.iterations must be >= 0")
	}
	if _, err := closestpair.FinderByName(c.Cluster.Finder); err != nil {
		problems = append(problems, "cluster.finder must be \"slow\" or \"fast\"")
	}
	if c.Sweep.MinK < 1 || c.Sweep.MaxK < c.Sweep.MinK {
		problems = append(problems, "sweep range must satisfy 1 <= min_k <= max_k")
	}
	if c.Random.Count < 2 {
		problems = append(problems, "random.count must be >= 2")
	}
	if c.Report.OutputDir == "" {
		problems = append(problems, "report.output_dir is required")
	}

	if len(problems) > 0 {
		return eris.Errorf("config: invalid: %s", strings.Join(problems, "; "))
	}

	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

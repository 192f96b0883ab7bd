package cmd

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/career-predictor/internal/predictor"
	"github.com/spigell/career-predictor/internal/server"
)

const (
	app       = "career-predictor"
	envPrefix = "CAREER"
)

type Config struct {
	Model  *ModelConfig  `mapstructure:"model"`
	Server *ServerConfig `mapstructure:"server"`
}

type ModelConfig struct {
	Samples         int    `mapstructure:"samples"`
	Seed            uint64 `mapstructure:"seed"`
	Trees           int    `mapstructure:"trees"`
	MaxDepth        int    `mapstructure:"max-depth"`
	MinSamplesSplit int    `mapstructure:"min-samples-split"`
	MaxFeatures     int    `mapstructure:"max-features"`
	Workers         int    `mapstructure:"workers"`
}

type ServerConfig struct {
	Listen          string        `mapstructure:"listen"`
	ReadTimeout     time.Duration `mapstructure:"read-timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
}

func (c *ModelConfig) predictor() predictor.Config {
	return predictor.Config{
		Samples:         c.Samples,
		Seed:            c.Seed,
		Trees:           c.Trees,
		MaxDepth:        c.MaxDepth,
		MinSamplesSplit: c.MinSamplesSplit,
		MaxFeatures:     c.MaxFeatures,
		Workers:         c.Workers,
	}
}

func (c *ServerConfig) server() server.Config {
	return server.Config{
		Listen:          c.Listen,
		ReadTimeout:     c.ReadTimeout,
		ShutdownTimeout: c.ShutdownTimeout,
	}
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "career-predictor suggests a career path from a 30-item self-assessment",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is career-predictor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	defaults := predictor.DefaultConfig()

	v.SetDefault("model.samples", defaults.Samples)
	v.SetDefault("model.seed", defaults.Seed)
	v.SetDefault("model.trees", defaults.Trees)
	v.SetDefault("model.max-depth", defaults.MaxDepth)
	v.SetDefault("model.min-samples-split", defaults.MinSamplesSplit)
	v.SetDefault("model.max-features", defaults.MaxFeatures)
	v.SetDefault("model.workers", defaults.Workers)

	v.SetDefault("server.listen", ":8050")
	v.SetDefault("server.read-timeout", 10*time.Second)
	v.SetDefault("server.shutdown-timeout", 15*time.Second)
}

func initConfig() {
	// .env is optional, real environment wins over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The file is optional unless it was requested explicitly.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Model == nil {
		config.Model = &ModelConfig{}
	}
	if config.Server == nil {
		config.Server = &ServerConfig{}
	}

	return config, nil
}

package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/cover-letter/internal/profile"
)

const (
	app = "cover-letter"
)

type Config struct {
	Profile ProfileConfig  `mapstructure:"profile"`
	Timeout time.Duration  `mapstructure:"timeout"`
	Backend *BackendConfig `mapstructure:"backend"`
	Company *CompanyConfig `mapstructure:"company"`
	AI      *AIConfig      `mapstructure:"ai"`
	Server  *ServerConfig  `mapstructure:"server"`
}

// ProfileConfig is the candidate profile. Fields left empty are taken from
// the resume file when one is set.
type ProfileConfig struct {
	profile.CandidateProfile `mapstructure:",squash"`
	ResumeFile               string `mapstructure:"resume-file"`
}

type BackendConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user-agent"`
}

type CompanyConfig struct {
	Technology []string `mapstructure:"technology"`
	Finance    []string `mapstructure:"finance"`
}

type AIConfig struct {
	Provider  string        `mapstructure:"provider"`
	Emphasize []string      `mapstructure:"emphasize"`
	Gemini    *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	Listen         string   `mapstructure:"listen"`
	AllowedOrigins []string `mapstructure:"allowed-origins"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cover-letter writes tailored cover letters and serves them over HTTP",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envBindings := map[string]string{
		"backend.url":            "COVER_LETTER_BACKEND_URL",
		"profile.resume-file":    "COVER_LETTER_RESUME_FILE",
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
		"server.port":            "PORT",
	}
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	viper.SetDefault("backend.enabled", true)
	viper.SetDefault("server.port", 5000)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cover-letter.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// The version command never needs a config.
	if versionCmd.CalledAs() != "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	err := viper.ReadInConfig()

	// Without an explicit --config a missing file is fine: env and defaults remain.
	var notFound viper.ConfigFileNotFoundError
	if err != nil && cfgFile == "" && errors.As(err, &notFound) {
		return
	}

	// We can't proceed if the config file parsed with error.
	if err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Backend == nil {
		config.Backend = &BackendConfig{Enabled: true}
	}
	if config.Company == nil {
		config.Company = &CompanyConfig{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.Server == nil {
		config.Server = &ServerConfig{}
	}

	return config, nil
}

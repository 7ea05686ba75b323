package txtlog

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the logger settings in the form they take in configuration files
type Config struct {
	LogDir			string	`mapstructure:"log_dir"`
	LogFilename		string	`mapstructure:"log_filename"`
	LogExtension	string	`mapstructure:"log_extension"`
	LogToConsole	bool	`mapstructure:"log_to_console"`
}

// DefaultConfig returns the configuration used for keys that are not set. LogDir has no default.
func DefaultConfig() Config {
	return Config{
		LogFilename:	DefaultBaseName,
		LogExtension:	DefaultExtension,
		LogToConsole:	true,
	}
}

// LoadConfig reads the logger settings from v. Missing keys get the values
// of DefaultConfig, an explicitly empty log_filename is kept as is.
func LoadConfig(v *viper.Viper) (Config, error) {
	def := DefaultConfig()
	v.SetDefault("log_filename", def.LogFilename)
	v.SetDefault("log_extension", def.LogExtension)
	v.SetDefault("log_to_console", def.LogToConsole)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling logger config: %w", err)
	}

	if cfg.LogDir == "" {
		return Config{}, ErrNoLogDir
	}

	return cfg, nil
}

func (c Config) options() []Option {
	return []Option{
		WithBaseName(c.LogFilename),
		WithExtension(c.LogExtension),
		WithConsole(c.LogToConsole),
	}
}

package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings. A non-empty
// cfgFile pins the config file instead of searching the usual places.
func Load(cfgFile string) (*Config, error) {
	v := viper.GetViper()
	return loadWith(v, cfgFile)
}

// LoadWithViper loads configuration into a fresh viper instance and
// returns both. Useful in tests, where the global instance would leak
// state between cases.
func LoadWithViper(cfgFile string) (*Config, *viper.Viper, error) {
	v := viper.New()
	cfg, err := loadWith(v, cfgFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func loadWith(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	// a missing config file is fine in search mode; an explicit cfgFile
	// that cannot be read is not
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("WARRAQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	// Layout defaults
	v.SetDefault("layout.width", DefaultWidth)
	v.SetDefault("layout.indent", 0)
	v.SetDefault("layout.spacing", DefaultSpacing)
	v.SetDefault("layout.rtl", true)
	v.SetDefault("layout.ornament", DefaultOrnament)
	v.SetDefault("layout.stats", false)
	v.SetDefault("layout.chapters", DefaultChapters)

	// Page defaults
	v.SetDefault("page.size", string(DefaultPageSize))
	v.SetDefault("page.font", "")
	v.SetDefault("page.font_file", "")
	v.SetDefault("page.line_spacing", DefaultLineSpacing)
	v.SetDefault("page.first_line_indent", DefaultFirstLineIndent)
	v.SetDefault("page.header_space_before", DefaultHeaderSpaceBefore)
	v.SetDefault("page.header_space_after", DefaultHeaderSpaceAfter)
	v.SetDefault("page.chapter_breaks", true)

	// Output defaults
	v.SetDefault("output.path", DefaultOutputPath)
	v.SetDefault("output.pdf", false)
	v.SetDefault("output.keep_text", false)
	v.SetDefault("output.report", false)

	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	return os.MkdirAll(ConfigDir(), 0755)
}

package surfacegen

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the generator settings, loaded from surfacegen.toml and
// MEGASCRIPT_-prefixed environment variables.
type Config struct {
	SourceDir  string
	OutputDir  string
	Package    string
	ImportPath string
	LogLevel   string
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"source_dir":  "source",
	"output_dir":  "output",
	"package":     "package",
	"import_path": "import-path",
}

// LoadConfig loads configuration with built-in defaults suited to this
// repository layout. A missing config file is fine. Command-line flags win
// over environment variables, which win over the file; flags may be nil.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetConfigName("surfacegen")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.SetDefault("source_dir", "v1")
	v.SetDefault("output_dir", "v1/contextitems")
	v.SetDefault("package", "contextitems")
	v.SetDefault("import_path", "github.com/Infigo-Official/types-for-megascript/v1")
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("surfacegen: read config: %w", err)
		}
	}

	v.SetEnvPrefix("MEGASCRIPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("surfacegen: bind flag --%s: %w", name, err)
			}
		}
	}

	return &Config{
		SourceDir:  v.GetString("source_dir"),
		OutputDir:  v.GetString("output_dir"),
		Package:    v.GetString("package"),
		ImportPath: v.GetString("import_path"),
		LogLevel:   v.GetString("log_level"),
	}, nil
}

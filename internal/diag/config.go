package diag

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
)

// Config holds the diagnostic settings read from the environment.
type Config struct {
	Debug   bool   `env:"GUARDRAIL_DEBUG"`
	Quiet   bool   `env:"GUARDRAIL_QUIET"`
	LogFile string `env:"GUARDRAIL_LOG_FILE"`
}

// LoadConfig reads Config from the environment. Unparseable variables
// fall back to zero values.
func LoadConfig() Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}
	}
	return cfg
}

// logPath resolves the debug log destination. An explicit GUARDRAIL_LOG_FILE
// wins; otherwise debug mode logs under the user's data directory. An empty
// result means no file sink.
func (c Config) logPath() string {
	if c.LogFile != "" {
		if expanded, err := homedir.Expand(c.LogFile); err == nil {
			return expanded
		}
		return c.LogFile
	}
	if !c.Debug {
		return ""
	}
	scope := gap.NewScope(gap.User, "guardrail")
	if path, err := scope.DataPath("debug.log"); err == nil {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".guardrail", "debug.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

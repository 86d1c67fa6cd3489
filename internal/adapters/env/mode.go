package env

import (
	"os"

	"github.com/vinaykagithapu/portfolio/internal/config"
	"github.com/vinaykagithapu/portfolio/internal/core"
)

func DetectMode() core.Mode {
	if os.Getenv("PORTFOLIO_DEV") == "1" {
		return core.ModeDev
	}
	return core.ModeProd
}

// ConfigPath returns PORTFOLIO_CONFIG, or the default config file name.
func ConfigPath() string {
	if p := os.Getenv("PORTFOLIO_CONFIG"); p != "" {
		return p
	}
	return config.DefaultPath
}

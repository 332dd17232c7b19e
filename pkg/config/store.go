package config

import (
	"fmt"
	"strings"
)

// StoreConfig configures catalog persistence. Path is where the catalog
// JSON file lives; Autoload makes the service load it on startup when the
// file exists.
type StoreConfig struct {
	Path     string `koanf:"path"`
	Autoload bool   `koanf:"autoload"`
}

// String returns a string representation of the store configuration.
func (c *StoreConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  path: %s\n", c.Path))
	b.WriteString(fmt.Sprintf("  autoload: %t\n", c.Autoload))
	return b.String()
}

func (c *StoreConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("catalog store path is not configured")
	}
	return nil
}

package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks cross-field constraints cleanenv tags cannot express.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) below database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if c.Cache.GroupSize <= 0 {
		return fmt.Errorf("cache.group_size must be positive, got %d", c.Cache.GroupSize)
	}

	if _, err := url.ParseRequestURI(c.RobotCatalog.BaseURL); err != nil {
		return fmt.Errorf("robot_catalog.base_url: %w", err)
	}
	if strings.HasSuffix(c.RobotCatalog.BaseURL, "/") {
		return fmt.Errorf("robot_catalog.base_url must not end with a slash")
	}

	if _, err := url.ParseRequestURI(c.Blob.PublicBaseURL); err != nil {
		return fmt.Errorf("blob.public_base_url: %w", err)
	}

	level := strings.ToLower(c.Log.Level)
	if !slices.Contains(validLogLevels, level) {
		return fmt.Errorf("log.level %q is not one of %v", c.Log.Level, validLogLevels)
	}

	return nil
}

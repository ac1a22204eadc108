// Package config provides environment-driven configuration for the
// onboarding server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ServerConfig holds the settings the HTTP server is started with.
type ServerConfig struct {
	Port        int
	DatabaseURL string

	// AllowedOrigin is sent back as Access-Control-Allow-Origin.
	AllowedOrigin string

	// EducationDataURL and UniversityDataURL point at the master-data
	// endpoints. Either may be empty, in which case the corresponding
	// dataset is served empty.
	EducationDataURL  string
	UniversityDataURL string
}

// NewServerConfig creates the server configuration from environment
// variables. It reads PORT (default: 3000), DATABASE_URL (required),
// ALLOWED_ORIGIN (default: *), EDUCATION_DATA_URL and
// UNIVERSITY_DATA_URL.
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "3000" // default
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	config := &ServerConfig{
		Port:              port,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		AllowedOrigin:     os.Getenv("ALLOWED_ORIGIN"),
		EducationDataURL:  os.Getenv("EDUCATION_DATA_URL"),
		UniversityDataURL: os.Getenv("UNIVERSITY_DATA_URL"),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration and fills defaults.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.AllowedOrigin == "" {
		c.AllowedOrigin = "*"
	}
	return nil
}

package app

import "deaddrop/internal/domain"

// Config holds runtime options for building the relay server.
type Config struct {
	Listen           string        // listen address, e.g. :8080
	JournalistSecret string        // shared secret guarding journalist key replacement
	Limits           domain.Limits // validation and retention policy
}

// DefaultConfig returns the stock server configuration.
func DefaultConfig() Config {
	return Config{
		Listen: ":8080",
		Limits: domain.DefaultLimits(),
	}
}

package config

import "fmt"

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	profileIDs := make(map[string]bool)
	for i, profile := range c.Profiles {
		if profile.ID == "" {
			return fmt.Errorf("profile %d: missing ID", i)
		}
		if profileIDs[profile.ID] {
			return fmt.Errorf("duplicate profile ID: %s", profile.ID)
		}
		profileIDs[profile.ID] = true

		if err := validateProfile(&profile); err != nil {
			return fmt.Errorf("profile %s: %w", profile.ID, err)
		}
	}

	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	return nil
}

func validateProfile(p *ProfileConfig) error {
	// Positions may be negative (multi-monitor), sizes may not
	if p.Width != nil && *p.Width < 0 {
		return fmt.Errorf("negative width: %d", *p.Width)
	}
	if p.Height != nil && *p.Height < 0 {
		return fmt.Errorf("negative height: %d", *p.Height)
	}
	return nil
}

func validateSettings(s *Settings) error {
	switch s.LogLevel {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level: %s", s.LogLevel)
	}
}

package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Profiles []profileSchema `toml:"profiles"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profiles schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	Name        string `toml:"name"`
	BaseURL     string `toml:"base_url"`
	UserEmail   string `toml:"user_email,omitempty"`
	UserName    string `toml:"user_name,omitempty"`
	LastLoginAt string `toml:"last_login_at,omitempty"`
}

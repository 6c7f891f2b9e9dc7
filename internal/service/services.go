package service

import (
	"github.com/rs/zerolog"
	"github.com/xolan/calrange/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Range  *RangeService
	Config *ConfigService
}

// NewServices resolves the default config path, loads the file plus the
// CALRANGE_* overrides and builds the services.
func NewServices(logger zerolog.Logger) (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithConfig(configPath, cfg, logger), nil
}

// NewServicesWithConfig builds the services from an already loaded config (useful for testing)
func NewServicesWithConfig(configPath string, cfg config.Config, logger zerolog.Logger) *Services {
	return &Services{
		Range:  NewRangeService(cfg, logger),
		Config: NewConfigService(configPath, cfg),
	}
}

// Reload re-reads the configuration and hands it to the range service
func (s *Services) Reload() error {
	if err := s.Config.Reload(); err != nil {
		return err
	}
	s.Range.SetConfig(s.Config.Get())
	return nil
}

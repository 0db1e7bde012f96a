// Package app wires the color picker services together for the command-line tools.
package app

import (
	"fmt"

	"github.com/spf13/viper"

	"colorpicker/internal/field"
	"colorpicker/internal/logger"
	"colorpicker/internal/services"
	"colorpicker/pkg/colortypes"
)

// App holds the service registry and the resolved configuration.
// Commands resolve the services they need through Registry.
type App struct {
	Registry *services.Registry
	Config   services.Config
}

// New resolves configuration from v and initializes every service.
func New(v *viper.Viper) (*App, error) {
	return NewWithWorkDir(v, "")
}

// NewWithWorkDir is New with an explicit directory for the local .env file.
func NewWithWorkDir(v *viper.Viper, workDir string) (*App, error) {
	configuration := services.NewConfigurationService(v)
	if workDir != "" {
		configuration.SetWorkDir(workDir)
	}

	codec := services.NewColorCodecService()
	translator := services.NewI18nService(services.DefaultLocale)

	registry := services.NewRegistry()
	for _, service := range []colortypes.Service{
		configuration,
		codec,
		services.NewPayloadService(),
		translator,
		services.NewBatchService(codec),
		services.NewReportService(),
	} {
		if err := registry.RegisterService(service); err != nil {
			return nil, err
		}
	}

	if err := registry.InitializeAll(); err != nil {
		return nil, err
	}

	config, err := configuration.Config()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := translator.SetLocale(config.Locale); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("Services initialized", "services", registry.Names(), "mode", config.Mode, "locale", config.Locale)
	return &App{Registry: registry, Config: config}, nil
}

// NewField creates a field named name configured from the resolved configuration.
func (a *App) NewField(name string) (*field.ColorPickerField, error) {
	codec, err := a.Registry.GetColorCodecService()
	if err != nil {
		return nil, err
	}
	payloads, err := a.Registry.GetPayloadService()
	if err != nil {
		return nil, err
	}
	translator, err := a.Registry.GetI18nService()
	if err != nil {
		return nil, err
	}

	f := field.New(name, codec, payloads, translator).SetMode(a.Config.Mode)
	if !a.Config.ShowCheckbox {
		f.DisableCheckbox()
	}
	return f, nil
}

package services

import (
	"fmt"
	"sync"

	"colorpicker/pkg/colortypes"
)

// Registry holds the color picker services by name. Services are initialized in
// the order they were registered, so configuration registered first is ready
// before the services that read it.
type Registry struct {
	mu       sync.RWMutex
	services map[string]colortypes.Service
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]colortypes.Service),
	}
}

// RegisterService adds service under its name. A name can only be registered once.
func (r *Registry) RegisterService(service colortypes.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := service.Name()
	if _, exists := r.services[name]; exists {
		return fmt.Errorf("service %s already registered", name)
	}

	r.services[name] = service
	r.order = append(r.order, name)
	return nil
}

// GetService looks up a service by name.
func (r *Registry) GetService(name string) (colortypes.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, exists := r.services[name]
	if !exists {
		return nil, fmt.Errorf("service %s not found", name)
	}
	return service, nil
}

// InitializeAll initializes every service in registration order and stops at the first failure.
func (r *Registry) InitializeAll() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		if err := r.services[name].Initialize(); err != nil {
			return fmt.Errorf("failed to initialize service %s: %w", name, err)
		}
	}
	return nil
}

// Names returns the registered service names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// GetColorCodecService returns the registered codec.
func (r *Registry) GetColorCodecService() (*ColorCodecService, error) {
	return getTyped[*ColorCodecService](r, "color_codec")
}

// GetPayloadService returns the registered payload builder.
func (r *Registry) GetPayloadService() (*PayloadService, error) {
	return getTyped[*PayloadService](r, "payload")
}

// GetI18nService returns the registered translator.
func (r *Registry) GetI18nService() (*I18nService, error) {
	return getTyped[*I18nService](r, "i18n")
}

// GetConfigurationService returns the registered configuration service.
func (r *Registry) GetConfigurationService() (*ConfigurationService, error) {
	return getTyped[*ConfigurationService](r, "configuration")
}

// GetBatchService returns the registered batch service.
func (r *Registry) GetBatchService() (*BatchService, error) {
	return getTyped[*BatchService](r, "batch")
}

// GetReportService returns the registered report service.
func (r *Registry) GetReportService() (*ReportService, error) {
	return getTyped[*ReportService](r, "report")
}

func getTyped[T colortypes.Service](r *Registry, name string) (T, error) {
	var zero T
	service, err := r.GetService(name)
	if err != nil {
		return zero, err
	}
	typed, ok := service.(T)
	if !ok {
		return zero, fmt.Errorf("service %s has unexpected type %T", name, service)
	}
	return typed, nil
}

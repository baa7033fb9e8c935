package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store persists configured devices.
type Store interface {
	List(ctx context.Context) ([]Device, error)
	Create(ctx context.Context, d *Device) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

// ConfigValidator validates a device config document against its
// protocol's JSON Schema. Errors matching ErrValidation are returned to the
// caller unchanged.
type ConfigValidator interface {
	Validate(protocol string, schemaDoc json.RawMessage, payload map[string]any) error
}

type entry struct {
	device     Device
	controller MediaController
}

// Registry holds the configured devices and their live controllers.
type Registry struct {
	store     Store
	validator ConfigValidator
	factories map[string]Factory

	mu      sync.RWMutex
	entries map[string]*entry // device ID -> entry
}

// NewRegistry creates an empty registry backed by store.
func NewRegistry(store Store, validator ConfigValidator, factories ...Factory) *Registry {
	r := &Registry{
		store:     store,
		validator: validator,
		factories: make(map[string]Factory),
		entries:   make(map[string]*entry),
	}
	for _, f := range factories {
		r.factories[f.Protocol()] = f
	}
	return r
}

// Load replaces the registry contents with the devices in the store.
// Devices whose controller cannot be created are kept with a NullController.
func (r *Registry) Load(ctx context.Context) error {
	devices, err := r.store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	entries := make(map[string]*entry, len(devices))
	for _, d := range devices {
		controller, err := r.createController(d)
		if err != nil {
			log.Warn().Err(err).Str("device", d.Name).Str("protocol", d.Protocol).Msg("Device unavailable, using null controller")
			controller = NewNullController()
		}
		entries[d.ID] = &entry{device: d, controller: controller}
	}

	r.mu.Lock()
	r.entries = entries
	r.mu.Unlock()

	log.Info().Int("count", len(entries)).Msg("Devices loaded")
	return nil
}

// List returns all registered devices ordered by name.
func (r *Registry) List() []Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devices := make([]Device, 0, len(r.entries))
	for _, e := range r.entries {
		devices = append(devices, e.device)
	}
	slices.SortFunc(devices, func(a, b Device) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return devices
}

// Len returns the number of registered devices.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Get looks a device up by ID or case-insensitive name.
func (r *Registry) Get(idOrName string) (Device, MediaController, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.lookup(idOrName)
	if e == nil {
		return Device{}, nil, ErrNotFound
	}
	return e.device, e.controller, nil
}

// Add validates, persists, and registers a new device.
func (r *Registry) Add(ctx context.Context, name, protocol string, config json.RawMessage) (Device, error) {
	d := Device{
		ID:        uuid.NewString(),
		Name:      name,
		Protocol:  protocol,
		Config:    config,
		CreatedAt: time.Now().UTC(),
	}

	controller, err := r.createController(d)
	if err != nil {
		return Device{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lookup(name) != nil {
		return Device{}, fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	if err := r.store.Create(ctx, &d); err != nil {
		return Device{}, fmt.Errorf("failed to store device: %w", err)
	}
	r.entries[d.ID] = &entry{device: d, controller: controller}

	log.Info().Str("id", d.ID).Str("device", d.Name).Str("protocol", d.Protocol).Msg("Device registered")
	return d, nil
}

// Rename changes a device's name.
func (r *Registry) Rename(ctx context.Context, idOrName, newName string) (Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.lookup(idOrName)
	if e == nil {
		return Device{}, ErrNotFound
	}
	if other := r.lookup(newName); other != nil && other != e {
		return Device{}, fmt.Errorf("%w: %s", ErrDuplicate, newName)
	}
	if err := r.store.Rename(ctx, e.device.ID, newName); err != nil {
		return Device{}, fmt.Errorf("failed to rename device: %w", err)
	}
	e.device.Name = newName
	return e.device, nil
}

// Remove unregisters and deletes a device.
func (r *Registry) Remove(ctx context.Context, idOrName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.lookup(idOrName)
	if e == nil {
		return ErrNotFound
	}
	if err := r.store.Delete(ctx, e.device.ID); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	delete(r.entries, e.device.ID)

	log.Info().Str("id", e.device.ID).Str("device", e.device.Name).Msg("Device removed")
	return nil
}

// lookup must be called with r.mu held.
func (r *Registry) lookup(idOrName string) *entry {
	if e, ok := r.entries[idOrName]; ok {
		return e
	}
	for _, e := range r.entries {
		if strings.EqualFold(e.device.Name, idOrName) {
			return e
		}
	}
	return nil
}

func (r *Registry) createController(d Device) (MediaController, error) {
	f, ok := r.factories[d.Protocol]
	if !ok {
		return nil, fmt.Errorf("%w: protocol %q", ErrUnsupported, d.Protocol)
	}

	if r.validator != nil {
		var payload map[string]any
		if err := json.Unmarshal(d.Config, &payload); err != nil {
			return nil, fmt.Errorf("%w: config must be a JSON object", ErrValidation)
		}
		if err := r.validator.Validate(d.Protocol, f.ConfigSchema(), payload); err != nil {
			if errors.Is(err, ErrValidation) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	return f.CreateController(d)
}

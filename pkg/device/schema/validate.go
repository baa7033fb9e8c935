package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/urmzd/homai-roku/pkg/device"
)

// ConfigError reports the parts of a device config that failed validation.
// It matches device.ErrValidation.
type ConfigError struct {
	Protocol string
	// Fields are JSON pointers to the failing values; "/" is the whole
	// document, as for a missing required property.
	Fields []string
	Err    *jsonschema.ValidationError
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s config at %s", e.Protocol, strings.Join(e.Fields, ", "))
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == device.ErrValidation
}

// Validator validates device configuration documents against the JSON Schema
// published by each protocol factory. Compiled schemas are cached keyed by
// their raw bytes, and "format" keywords are asserted.
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewValidator creates a new Validator with an empty cache.
func NewValidator() *Validator {
	return &Validator{
		cache: make(map[string]*jsonschema.Schema),
	}
}

// Validate checks a device's config document against its protocol's schema.
// A document that does not satisfy the schema fails with *ConfigError. A
// schema that cannot be compiled is a programming error and is returned as
// is.
func (v *Validator) Validate(protocol string, schemaDoc json.RawMessage, payload map[string]any) error {
	if len(schemaDoc) == 0 || string(schemaDoc) == "{}" || string(schemaDoc) == "null" {
		return nil
	}

	compiled, err := v.compile(protocol, schemaDoc)
	if err != nil {
		return fmt.Errorf("failed to compile %s config schema: %w", protocol, err)
	}

	err = compiled.Validate(payload)
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		return &ConfigError{Protocol: protocol, Fields: failingFields(ve), Err: ve}
	}
	return err
}

// failingFields collects the instance locations of the leaf errors.
func failingFields(ve *jsonschema.ValidationError) []string {
	var fields []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			fields = append(fields, "/"+strings.Join(e.InstanceLocation, "/"))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	slices.Sort(fields)
	return slices.Compact(fields)
}

func (v *Validator) compile(protocol string, schemaDoc json.RawMessage) (*jsonschema.Schema, error) {
	key := string(schemaDoc)

	v.mu.RLock()
	if s, ok := v.cache[key]; ok {
		v.mu.RUnlock()
		return s, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.cache[key]; ok {
		return s, nil
	}

	var schemaMap any
	if err := json.Unmarshal(schemaDoc, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	resource := protocol + "-config.json"
	if err := c.AddResource(resource, schemaMap); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	compiled, err := c.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}

	v.cache[key] = compiled
	return compiled, nil
}

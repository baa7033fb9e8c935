package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	devices map[string]Device
	failOn  string
}

func newMemStore(devices ...Device) *memStore {
	s := &memStore{devices: make(map[string]Device)}
	for _, d := range devices {
		s.devices[d.ID] = d
	}
	return s
}

func (s *memStore) List(ctx context.Context) ([]Device, error) {
	if s.failOn == "list" {
		return nil, errors.New("list failed")
	}
	out := make([]Device, 0, len(s.devices))
	for _, d := range s.devices {
		out = append(out, d)
	}
	return out, nil
}

func (s *memStore) Create(ctx context.Context, d *Device) error {
	if s.failOn == "create" {
		return errors.New("create failed")
	}
	s.devices[d.ID] = *d
	return nil
}

func (s *memStore) Rename(ctx context.Context, id, name string) error {
	d, ok := s.devices[id]
	if !ok {
		return ErrNotFound
	}
	d.Name = name
	s.devices[id] = d
	return nil
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.devices[id]; !ok {
		return ErrNotFound
	}
	delete(s.devices, id)
	return nil
}

type stubFactory struct {
	created []Device
}

func (f *stubFactory) Protocol() string { return "stub" }

func (f *stubFactory) ConfigSchema() json.RawMessage { return json.RawMessage(`{}`) }

func (f *stubFactory) CreateController(d Device) (MediaController, error) {
	f.created = append(f.created, d)
	return NewNullController(), nil
}

// rejectingValidator rejects any payload lacking a "url" key.
type rejectingValidator struct{}

func (rejectingValidator) Validate(protocol string, schemaDoc json.RawMessage, payload map[string]any) error {
	if _, ok := payload["url"]; !ok {
		return errors.New("missing url")
	}
	return nil
}

func TestRegistry_AddAndGet(t *testing.T) {
	store := newMemStore()
	factory := &stubFactory{}
	r := NewRegistry(store, rejectingValidator{}, factory)

	d, err := r.Add(context.Background(), "Living Room", "stub", json.RawMessage(`{"url":"http://10.0.0.5:8060"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Len(t, store.devices, 1)
	assert.Len(t, factory.created, 1)

	byName, _, err := r.Get("living room")
	require.NoError(t, err)
	assert.Equal(t, d.ID, byName.ID)

	byID, controller, err := r.Get(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Living Room", byID.Name)
	assert.NotNil(t, controller)
}

func TestRegistry_AddDuplicateName(t *testing.T) {
	r := NewRegistry(newMemStore(), nil, &stubFactory{})
	cfg := json.RawMessage(`{"url":"http://10.0.0.5:8060"}`)

	_, err := r.Add(context.Background(), "Bedroom", "stub", cfg)
	require.NoError(t, err)

	_, err = r.Add(context.Background(), "BEDROOM", "stub", cfg)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRegistry_AddUnknownProtocol(t *testing.T) {
	r := NewRegistry(newMemStore(), nil, &stubFactory{})

	_, err := r.Add(context.Background(), "Den", "zwave", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestRegistry_AddInvalidConfig(t *testing.T) {
	store := newMemStore()
	r := NewRegistry(store, rejectingValidator{}, &stubFactory{})

	_, err := r.Add(context.Background(), "Den", "stub", json.RawMessage(`{"host":"x"}`))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = r.Add(context.Background(), "Den", "stub", json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.devices)
}

// fieldValidator fails with an error that already matches ErrValidation.
type fieldValidator struct{ err error }

func (v fieldValidator) Validate(protocol string, schemaDoc json.RawMessage, payload map[string]any) error {
	return v.err
}

func TestRegistry_AddKeepsValidatorError(t *testing.T) {
	invalid := fmt.Errorf("%w: stub config at /url", ErrValidation)
	r := NewRegistry(newMemStore(), fieldValidator{err: invalid}, &stubFactory{})

	_, err := r.Add(context.Background(), "Den", "stub", json.RawMessage(`{"url":1}`))
	assert.Same(t, invalid, err)
}

func TestRegistry_AddStoreFailureDoesNotRegister(t *testing.T) {
	store := newMemStore()
	store.failOn = "create"
	r := NewRegistry(store, nil, &stubFactory{})

	_, err := r.Add(context.Background(), "Den", "stub", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Zero(t, r.Len())
}

func TestRegistry_LoadKeepsBrokenDevices(t *testing.T) {
	store := newMemStore(
		Device{ID: "a", Name: "Kitchen", Protocol: "stub", Config: json.RawMessage(`{"url":"http://x"}`)},
		Device{ID: "b", Name: "Attic", Protocol: "ir", Config: json.RawMessage(`{}`)},
	)
	r := NewRegistry(store, rejectingValidator{}, &stubFactory{})

	require.NoError(t, r.Load(context.Background()))

	devices := r.List()
	require.Len(t, devices, 2)
	assert.Equal(t, "Attic", devices[0].Name)
	assert.Equal(t, "Kitchen", devices[1].Name)

	_, controller, err := r.Get("attic")
	require.NoError(t, err)
	assert.IsType(t, &NullController{}, controller)
}

func TestRegistry_LoadStoreError(t *testing.T) {
	store := newMemStore()
	store.failOn = "list"
	r := NewRegistry(store, nil)

	assert.Error(t, r.Load(context.Background()))
}

func TestRegistry_Rename(t *testing.T) {
	store := newMemStore()
	r := NewRegistry(store, nil, &stubFactory{})
	cfg := json.RawMessage(`{}`)

	d, err := r.Add(context.Background(), "Bedroom", "stub", cfg)
	require.NoError(t, err)
	_, err = r.Add(context.Background(), "Office", "stub", cfg)
	require.NoError(t, err)

	renamed, err := r.Rename(context.Background(), "bedroom", "Guest Room")
	require.NoError(t, err)
	assert.Equal(t, d.ID, renamed.ID)
	assert.Equal(t, "Guest Room", store.devices[d.ID].Name)

	// Renaming to its own name with different case is allowed
	_, err = r.Rename(context.Background(), "guest room", "GUEST ROOM")
	assert.NoError(t, err)

	_, err = r.Rename(context.Background(), "Guest Room", "office")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = r.Rename(context.Background(), "missing", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_Remove(t *testing.T) {
	store := newMemStore()
	r := NewRegistry(store, nil, &stubFactory{})

	d, err := r.Add(context.Background(), "Bedroom", "stub", json.RawMessage(`{}`))
	require.NoError(t, err)

	require.NoError(t, r.Remove(context.Background(), d.ID))
	assert.Zero(t, r.Len())
	assert.Empty(t, store.devices)

	_, _, err = r.Get(d.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Remove(context.Background(), d.ID), ErrNotFound)
}

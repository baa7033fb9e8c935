package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urmzd/homai-roku/pkg/device"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DeviceStore persists the devices of one profile. It implements
// device.Store.
type DeviceStore struct {
	db        *DB
	profileID int64
}

var _ device.Store = (*DeviceStore)(nil)

// Devices returns the device store for a profile.
func (db *DB) Devices(profileID int64) *DeviceStore {
	return &DeviceStore{db: db, profileID: profileID}
}

func (s *DeviceStore) List(ctx context.Context) ([]device.Device, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, protocol, config, created_at
		FROM devices WHERE profile_id = ?
		ORDER BY name COLLATE NOCASE
	`, s.profileID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var devices []device.Device
	for rows.Next() {
		var d device.Device
		var config, createdAt string
		if err := rows.Scan(&d.ID, &d.Name, &d.Protocol, &config, &createdAt); err != nil {
			return nil, err
		}
		d.Config = []byte(config)
		d.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

func (s *DeviceStore) Create(ctx context.Context, d *device.Device) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	config := string(d.Config)
	if config == "" {
		config = "{}"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO devices (id, profile_id, name, protocol, config, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, d.ID, s.profileID, d.Name, d.Protocol, config, d.CreatedAt.UTC().Format(time.DateTime))
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", device.ErrDuplicate, d.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

func (s *DeviceStore) Rename(ctx context.Context, id, name string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE devices SET name = ?, updated_at = datetime('now')
		WHERE id = ? AND profile_id = ?
	`, name, id, s.profileID)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", device.ErrDuplicate, name)
	}
	if err != nil {
		return err
	}
	return expectOne(result.RowsAffected())
}

func (s *DeviceStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM devices WHERE id = ? AND profile_id = ?`, id, s.profileID)
	if err != nil {
		return err
	}
	return expectOne(result.RowsAffected())
}

func expectOne(rows int64, err error) error {
	if err != nil {
		return err
	}
	if rows == 0 {
		return device.ErrNotFound
	}
	return nil
}

// isUniqueViolation reports a duplicate id or a duplicate name within the
// profile.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")
}

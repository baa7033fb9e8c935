package db

import (
	"context"
	"fmt"
)

// DefaultProfile is the profile created on first run.
const DefaultProfile = "default"

// Bootstrap creates the default profile and API server config on an empty
// database. It is called after migrations and is a no-op afterwards.
func (db *DB) Bootstrap(ctx context.Context) error {
	needs, err := db.NeedsBootstrap(ctx)
	if err != nil {
		return fmt.Errorf("failed to check profiles: %w", err)
	}
	if !needs {
		return nil
	}

	profile := &Profile{Name: DefaultProfile, IsActive: true}
	if err := db.Profiles().Create(ctx, profile); err != nil {
		return fmt.Errorf("failed to create default profile: %w", err)
	}

	api := &APIServer{ProfileID: profile.ID, Host: "0.0.0.0", Port: 8080}
	if err := db.APIServers().Save(ctx, api); err != nil {
		return fmt.Errorf("failed to create default API server: %w", err)
	}

	return nil
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

package database

import (
	"context"
	"fmt"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	channelRepo  contract.ChannelRepo
	userRepo     contract.UserRepo
	choreRepo    contract.ChoreRepo
	settingsRepo contract.SettingsRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.channelRepo = newChannelRepo(db.conn)
	i.userRepo = newUserRepo(db.conn)
	i.choreRepo = newChoreRepo(db.conn)
	i.settingsRepo = newSettingsRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		channelRepo:  newChannelRepo(db),
		userRepo:     newUserRepo(db),
		choreRepo:    newChoreRepo(db),
		settingsRepo: newSettingsRepo(db),
	}
}

// Channel returns the channel repository
func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

// User returns the roster repository
func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

// Chore returns the chore catalog repository
func (i *instance) Chore() contract.ChoreRepo {
	return i.choreRepo
}

// Settings returns the channel settings repository
func (i *instance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/contract"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
)

type choreRepo struct {
	db dbConn
}

func newChoreRepo(db dbConn) contract.ChoreRepo {
	return &choreRepo{db: db}
}

func (r *choreRepo) Create(chore *entity.Chore) error {
	query := `
		INSERT INTO chores (channel_id, name, area, weight, cadence, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		chore.ChannelID,
		chore.Name,
		chore.Area,
		chore.Weight,
		string(chore.Cadence),
		chore.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create chore: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	chore.ID = id
	return nil
}

func (r *choreRepo) GetByID(id int64) (*entity.Chore, error) {
	chore := &entity.Chore{}
	query := `
		SELECT id, channel_id, name, area, weight, cadence, is_active, created_at, updated_at
		FROM chores
		WHERE id = ?
	`

	err := r.db.QueryRow(query, id).Scan(
		&chore.ID,
		&chore.ChannelID,
		&chore.Name,
		&chore.Area,
		&chore.Weight,
		&chore.Cadence,
		&chore.IsActive,
		&chore.CreatedAt,
		&chore.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chore: %w", err)
	}

	return chore, nil
}

// GetActiveByChannel returns the catalog in id order. The allocator staggers
// monthly chores by their position in this order, so it must be stable.
func (r *choreRepo) GetActiveByChannel(channelID int64) ([]*entity.Chore, error) {
	query := `
		SELECT id, channel_id, name, area, weight, cadence, is_active, created_at, updated_at
		FROM chores
		WHERE channel_id = ? AND is_active = 1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chores: %w", err)
	}
	defer rows.Close()

	var chores []*entity.Chore
	for rows.Next() {
		chore := &entity.Chore{}
		err := rows.Scan(
			&chore.ID,
			&chore.ChannelID,
			&chore.Name,
			&chore.Area,
			&chore.Weight,
			&chore.Cadence,
			&chore.IsActive,
			&chore.CreatedAt,
			&chore.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chore: %w", err)
		}
		chores = append(chores, chore)
	}

	return chores, nil
}

func (r *choreRepo) Update(chore *entity.Chore) error {
	query := `
		UPDATE chores SET
			name = ?,
			area = ?,
			weight = ?,
			cadence = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		chore.Name,
		chore.Area,
		chore.Weight,
		string(chore.Cadence),
		chore.IsActive,
		time.Now(),
		chore.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update chore: %w", err)
	}

	return nil
}

func (r *choreRepo) Delete(choreID int64) error {
	query := `DELETE FROM chores WHERE id = ?`

	_, err := r.db.Exec(query, choreID)
	if err != nil {
		return fmt.Errorf("failed to delete chore: %w", err)
	}

	return nil
}

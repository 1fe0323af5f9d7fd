package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/contract"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
)

type settingsRepo struct {
	db dbConn
}

func newSettingsRepo(db dbConn) contract.SettingsRepo {
	return &settingsRepo{db: db}
}

const settingsColumns = `
	id, channel_id, notification_time, notification_day, is_enabled,
	cycle_weeks, min_per_week, max_per_week, avoid_immediate_repeat,
	no_duplicate_per_week, quarterly_per_cycle, cycle_start_date,
	created_at, updated_at`

func (r *settingsRepo) Create(settings *entity.Settings) error {
	query := `
		INSERT INTO channel_settings (
			channel_id, notification_time, notification_day, is_enabled,
			cycle_weeks, min_per_week, max_per_week, avoid_immediate_repeat,
			no_duplicate_per_week, quarterly_per_cycle, cycle_start_date
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		settings.ChannelID,
		settings.NotificationTime,
		settings.NotificationDay,
		settings.IsEnabled,
		settings.CycleWeeks,
		settings.MinPerWeek,
		settings.MaxPerWeek,
		settings.AvoidImmediateRepeat,
		settings.NoDuplicatePerWeek,
		settings.QuarterlyPerCycle,
		settings.CycleStartDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	settings.ID = id
	return nil
}

func (r *settingsRepo) scanRow(row *sql.Row) (*entity.Settings, error) {
	settings := &entity.Settings{}
	err := row.Scan(
		&settings.ID,
		&settings.ChannelID,
		&settings.NotificationTime,
		&settings.NotificationDay,
		&settings.IsEnabled,
		&settings.CycleWeeks,
		&settings.MinPerWeek,
		&settings.MaxPerWeek,
		&settings.AvoidImmediateRepeat,
		&settings.NoDuplicatePerWeek,
		&settings.QuarterlyPerCycle,
		&settings.CycleStartDate,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (r *settingsRepo) GetByChannelID(channelID int64) (*entity.Settings, error) {
	query := `SELECT` + settingsColumns + `
		FROM channel_settings
		WHERE channel_id = ?
	`

	return r.scanRow(r.db.QueryRow(query, channelID))
}

func (r *settingsRepo) Update(settings *entity.Settings) error {
	query := `
		UPDATE channel_settings SET
			notification_time = ?,
			notification_day = ?,
			is_enabled = ?,
			cycle_weeks = ?,
			min_per_week = ?,
			max_per_week = ?,
			avoid_immediate_repeat = ?,
			no_duplicate_per_week = ?,
			quarterly_per_cycle = ?,
			cycle_start_date = ?,
			updated_at = ?
		WHERE channel_id = ?
	`

	_, err := r.db.Exec(query,
		settings.NotificationTime,
		settings.NotificationDay,
		settings.IsEnabled,
		settings.CycleWeeks,
		settings.MinPerWeek,
		settings.MaxPerWeek,
		settings.AvoidImmediateRepeat,
		settings.NoDuplicatePerWeek,
		settings.QuarterlyPerCycle,
		settings.CycleStartDate,
		time.Now(),
		settings.ChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}

func (r *settingsRepo) Delete(channelID int64) error {
	query := `DELETE FROM channel_settings WHERE channel_id = ?`

	_, err := r.db.Exec(query, channelID)
	if err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}

	return nil
}

func (r *settingsRepo) GetEnabled() ([]*entity.Settings, error) {
	query := `SELECT` + settingsColumns + `
		FROM channel_settings
		WHERE is_enabled = 1
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled settings: %w", err)
	}
	defer rows.Close()

	var all []*entity.Settings
	for rows.Next() {
		settings := &entity.Settings{}
		err := rows.Scan(
			&settings.ID,
			&settings.ChannelID,
			&settings.NotificationTime,
			&settings.NotificationDay,
			&settings.IsEnabled,
			&settings.CycleWeeks,
			&settings.MinPerWeek,
			&settings.MaxPerWeek,
			&settings.AvoidImmediateRepeat,
			&settings.NoDuplicatePerWeek,
			&settings.QuarterlyPerCycle,
			&settings.CycleStartDate,
			&settings.CreatedAt,
			&settings.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settings: %w", err)
		}
		all = append(all, settings)
	}

	return all, nil
}

func (r *settingsRepo) SetEnabled(channelID int64, enabled bool) error {
	query := `
		UPDATE channel_settings SET
			is_enabled = ?,
			updated_at = ?
		WHERE channel_id = ?
	`

	_, err := r.db.Exec(query, enabled, time.Now(), channelID)
	if err != nil {
		return fmt.Errorf("failed to set settings enabled status: %w", err)
	}

	return nil
}

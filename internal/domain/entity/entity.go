package entity

import "time"

type Channel struct {
	ID               int64     `json:"id" db:"id"`
	SlackChannelID   string    `json:"slack_channel_id" db:"slack_channel_id"`
	SlackChannelName string    `json:"slack_channel_name" db:"slack_channel_name"`
	SlackTeamID      string    `json:"slack_team_id" db:"slack_team_id"`
	IsActive         bool      `json:"is_active" db:"is_active"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type User struct {
	ID            int64     `json:"id" db:"id"`
	ChannelID     int64     `json:"channel_id" db:"channel_id"`
	SlackUserID   string    `json:"slack_user_id" db:"slack_user_id"`
	SlackUserName string    `json:"slack_user_name" db:"slack_user_name"`
	DisplayName   string    `json:"display_name" db:"display_name"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	JoinedAt      time.Time `json:"joined_at" db:"joined_at"`
}

// Chore is one recurring task in a channel's catalog. The id is the sqlite
// rowid: stable for the chore's lifetime and never reused while it exists.
type Chore struct {
	ID        int64     `json:"id" db:"id"`
	ChannelID int64     `json:"channel_id" db:"channel_id"`
	Name      string    `json:"name" db:"name"`
	Area      string    `json:"area" db:"area"`
	Weight    int       `json:"weight" db:"weight"`
	Cadence   Cadence   `json:"cadence" db:"cadence"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Settings holds the per-channel notification and allocation configuration.
type Settings struct {
	ID                   int64     `json:"id" db:"id"`
	ChannelID            int64     `json:"channel_id" db:"channel_id"`
	NotificationTime     string    `json:"notification_time" db:"notification_time"` // HH:MM format
	NotificationDay      int       `json:"notification_day" db:"notification_day"`   // ISO 8601 weekday 1-7
	IsEnabled            bool      `json:"is_enabled" db:"is_enabled"`
	CycleWeeks           int       `json:"cycle_weeks" db:"cycle_weeks"`
	MinPerWeek           int       `json:"min_per_week" db:"min_per_week"`
	MaxPerWeek           int       `json:"max_per_week" db:"max_per_week"`
	AvoidImmediateRepeat bool      `json:"avoid_immediate_repeat" db:"avoid_immediate_repeat"`
	NoDuplicatePerWeek   bool      `json:"no_duplicate_per_week" db:"no_duplicate_per_week"`
	QuarterlyPerCycle    bool      `json:"quarterly_per_cycle" db:"quarterly_per_cycle"`
	CycleStartDate       time.Time `json:"cycle_start_date" db:"cycle_start_date"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// Policy returns the allocation policy knobs held in the settings.
func (s *Settings) Policy() Policy {
	return Policy{
		MinPerWeek:           s.MinPerWeek,
		MaxPerWeek:           s.MaxPerWeek,
		AvoidImmediateRepeat: s.AvoidImmediateRepeat,
		NoDuplicatePerWeek:   s.NoDuplicatePerWeek,
		QuarterlyPerCycle:    s.QuarterlyPerCycle,
	}
}

package contract

import (
	"context"
	"time"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
)

type ChoreService interface {
	SetupChannel(ctx context.Context, slackChannelID, channelName, teamID string) (*entity.Channel, bool, error)
	AddUser(channelID int64, slackUserID string) error
	RemoveUser(channelID int64, slackUserID string) error
	ListUsers(channelID int64) ([]*entity.User, error)
	AddChore(channelID int64, name, area string, weight int, cadence entity.Cadence) (*entity.Chore, error)
	UpdateChore(channelID, choreID int64, name, area string, weight int, cadence entity.Cadence) error
	RemoveChore(channelID, choreID int64) error
	ListChores(channelID int64) ([]*entity.Chore, error)
	ComputeSchedule(channelID int64) (*entity.CycleResult, error)
	CurrentWeekIndex(settings *entity.Settings, now time.Time) int
	UpdateChannelConfig(channelID int64, configType, configValue string) error
	GetSettings(channelID int64) (*entity.Settings, error)
	PauseScheduler(channelID int64) error
	ResumeScheduler(channelID int64) error
}

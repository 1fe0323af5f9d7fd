package contract

import (
	"context"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
	User() UserRepo
	Chore() ChoreRepo
	Settings() SettingsRepo
}

// ChannelRepo defines the contract for channel repository
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetBySlackID(slackChannelID string) (*entity.Channel, error)
	GetByID(id int64) (*entity.Channel, error)
	Update(channel *entity.Channel) error
	GetActiveChannels() ([]*entity.Channel, error)
}

// UserRepo defines the contract for roster repository
type UserRepo interface {
	Create(user *entity.User) error
	GetByChannelAndSlackID(channelID int64, slackUserID string) (*entity.User, error)
	GetActiveUsersByChannel(channelID int64) ([]*entity.User, error)
	Delete(userID int64) error
}

// ChoreRepo defines the contract for the chore catalog repository
type ChoreRepo interface {
	Create(chore *entity.Chore) error
	GetByID(id int64) (*entity.Chore, error)
	GetActiveByChannel(channelID int64) ([]*entity.Chore, error)
	Update(chore *entity.Chore) error
	Delete(choreID int64) error
}

// SettingsRepo defines the contract for per-channel settings repository
type SettingsRepo interface {
	Create(settings *entity.Settings) error
	GetByChannelID(channelID int64) (*entity.Settings, error)
	Update(settings *entity.Settings) error
	Delete(channelID int64) error
	GetEnabled() ([]*entity.Settings, error)
	SetEnabled(channelID int64, enabled bool) error
}

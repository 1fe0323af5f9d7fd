package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/allocator"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/contract"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
)

type choreService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	scheduler   *scheduler
}

func newChore(dm contract.DataManager, slackClient contract.SlackClient) *choreService {
	return &choreService{
		dm:          dm,
		slackClient: slackClient,
		scheduler:   nil, // Will be set later to avoid circular dependency
	}
}

func (s *choreService) SetScheduler(scheduler *scheduler) {
	s.scheduler = scheduler
}

func (s *choreService) SetupChannel(ctx context.Context, slackChannelID, slackChannelName, slackTeamID string) (*entity.Channel, bool, error) {
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check channel: %w", err)
	}

	if channel != nil {
		return channel, false, nil // Channel already existed
	}

	channel = &entity.Channel{
		SlackChannelID:   slackChannelID,
		SlackChannelName: slackChannelName,
		SlackTeamID:      slackTeamID,
		IsActive:         true,
	}

	// Channel and its default settings are created together: a channel
	// without settings would break the scheduler.
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Channel().Create(channel); err != nil {
			return fmt.Errorf("failed to create channel: %w", err)
		}

		settings := defaultSettings(channel.ID, time.Now().UTC())
		if err := tx.Settings().Create(settings); err != nil {
			return fmt.Errorf("failed to create channel settings: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	// Notify scheduler of new channel
	if s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}

	return channel, true, nil // Channel was auto-created
}

func defaultSettings(channelID int64, now time.Time) *entity.Settings {
	return &entity.Settings{
		ChannelID:            channelID,
		NotificationTime:     domain.DefaultNotificationTime,
		NotificationDay:      domain.DefaultNotificationDay,
		IsEnabled:            true,
		CycleWeeks:           domain.DefaultCycleWeeks,
		MinPerWeek:           domain.DefaultMinPerWeek,
		MaxPerWeek:           domain.DefaultMaxPerWeek,
		AvoidImmediateRepeat: true,
		NoDuplicatePerWeek:   true,
		QuarterlyPerCycle:    true,
		CycleStartDate:       weekStart(now),
	}
}

// weekStart returns 00:00 UTC of the Monday of now's week, the anchor from
// which week indices are counted.
func weekStart(now time.Time) time.Time {
	now = now.UTC()
	offset := (int(now.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}

func (s *choreService) AddUser(channelID int64, slackUserID string) error {
	// Get user info from Slack
	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		return fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	existingUser, err := s.dm.User().GetByChannelAndSlackID(channelID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return fmt.Errorf("user is already in the rotation")
	}

	displayName := userInfo.Profile.RealName
	if displayName == "" {
		displayName = userInfo.Profile.DisplayName
	}
	if displayName == "" {
		displayName = userInfo.Name
	}

	user := &entity.User{
		ChannelID:     channelID,
		SlackUserID:   slackUserID,
		SlackUserName: userInfo.Name,
		DisplayName:   displayName,
		IsActive:      true,
	}

	return s.dm.User().Create(user)
}

func (s *choreService) RemoveUser(channelID int64, slackUserID string) error {
	user, err := s.dm.User().GetByChannelAndSlackID(channelID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user == nil {
		return fmt.Errorf("user not found in rotation")
	}

	return s.dm.User().Delete(user.ID)
}

func (s *choreService) ListUsers(channelID int64) ([]*entity.User, error) {
	return s.dm.User().GetActiveUsersByChannel(channelID)
}

func (s *choreService) AddChore(channelID int64, name, area string, weight int, cadence entity.Cadence) (*entity.Chore, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("chore name cannot be empty")
	}
	if !cadence.Valid() {
		return nil, fmt.Errorf("invalid cadence %q. Use one of: %s", cadence, cadenceList())
	}

	chore := &entity.Chore{
		ChannelID: channelID,
		Name:      name,
		Area:      strings.TrimSpace(area),
		Weight:    clampWeight(weight),
		Cadence:   cadence,
		IsActive:  true,
	}

	if err := s.dm.Chore().Create(chore); err != nil {
		return nil, fmt.Errorf("failed to create chore: %w", err)
	}

	return chore, nil
}

func (s *choreService) UpdateChore(channelID, choreID int64, name, area string, weight int, cadence entity.Cadence) error {
	chore, err := s.dm.Chore().GetByID(choreID)
	if err != nil {
		return fmt.Errorf("failed to get chore: %w", err)
	}
	if chore == nil || chore.ChannelID != channelID {
		return fmt.Errorf("chore %d not found in this channel", choreID)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("chore name cannot be empty")
	}
	if !cadence.Valid() {
		return fmt.Errorf("invalid cadence %q. Use one of: %s", cadence, cadenceList())
	}

	// Identity is stable across edits: only the attributes change.
	chore.Name = name
	chore.Area = strings.TrimSpace(area)
	chore.Weight = clampWeight(weight)
	chore.Cadence = cadence

	return s.dm.Chore().Update(chore)
}

func (s *choreService) RemoveChore(channelID, choreID int64) error {
	chore, err := s.dm.Chore().GetByID(choreID)
	if err != nil {
		return fmt.Errorf("failed to get chore: %w", err)
	}
	if chore == nil || chore.ChannelID != channelID {
		return fmt.Errorf("chore %d not found in this channel", choreID)
	}

	return s.dm.Chore().Delete(choreID)
}

func (s *choreService) ListChores(channelID int64) ([]*entity.Chore, error) {
	return s.dm.Chore().GetActiveByChannel(channelID)
}

// ComputeSchedule snapshots the roster, catalog and settings and runs the
// allocator over them. The result is never persisted; any input change means
// a full recomputation on the next call.
func (s *choreService) ComputeSchedule(channelID int64) (*entity.CycleResult, error) {
	settings, err := s.dm.Settings().GetByChannelID(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		return nil, fmt.Errorf("channel is not set up")
	}

	users, err := s.dm.User().GetActiveUsersByChannel(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	chores, err := s.dm.Chore().GetActiveByChannel(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chores: %w", err)
	}

	roster := buildRoster(users)
	catalog := make([]entity.Chore, 0, len(chores))
	for _, c := range chores {
		catalog = append(catalog, *c)
	}

	return allocator.Allocate(roster, catalog, settings.CycleWeeks, settings.Policy())
}

// buildRoster converts users to the engine's person view. Display names
// collide occasionally; the engine needs unique names, so collisions get the
// Slack user id appended.
func buildRoster(users []*entity.User) []entity.Person {
	seen := make(map[string]bool, len(users))
	roster := make([]entity.Person, 0, len(users))
	for _, u := range users {
		name := u.DisplayName
		if name == "" {
			name = u.SlackUserName
		}
		if seen[name] {
			name = fmt.Sprintf("%s (%s)", name, u.SlackUserID)
		}
		seen[name] = true
		roster = append(roster, entity.Person{Name: name, Contact: u.SlackUserID})
	}
	return roster
}

// CurrentWeekIndex maps the wall clock onto a week index within the cycle,
// counting whole weeks since the cycle start date.
func (s *choreService) CurrentWeekIndex(settings *entity.Settings, now time.Time) int {
	if settings.CycleWeeks < 1 {
		return 0
	}
	start := weekStart(settings.CycleStartDate)
	elapsed := now.UTC().Sub(start)
	if elapsed < 0 {
		return 0
	}
	weeks := int(elapsed.Hours() / (24 * 7))
	return weeks % settings.CycleWeeks
}

func (s *choreService) UpdateChannelConfig(channelID int64, configType, value string) error {
	settings, err := s.dm.Settings().GetByChannelID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if settings == nil {
		settings = defaultSettings(channelID, time.Now().UTC())
		if err := s.dm.Settings().Create(settings); err != nil {
			return fmt.Errorf("failed to create settings: %w", err)
		}
	}

	value = strings.TrimSpace(value)

	switch configType {
	case "time":
		if _, err := time.Parse("15:04", value); err != nil {
			return fmt.Errorf("invalid time format. Use HH:MM (24-hour format). Example: 09:30")
		}
		settings.NotificationTime = value
	case "day":
		day, ok := domain.WeekdayNumbers[value]
		if !ok {
			return fmt.Errorf("invalid day. Use a number 1-7 (1=Mon, 2=Tue, 3=Wed, 4=Thu, 5=Fri, 6=Sat, 7=Sun)")
		}
		settings.NotificationDay = day
	case "weeks":
		weeks, err := strconv.Atoi(value)
		if err != nil || weeks < 1 || weeks > domain.MaxCycleWeeks {
			return fmt.Errorf("invalid cycle length. Use a number between 1 and %d", domain.MaxCycleWeeks)
		}
		settings.CycleWeeks = weeks
	case "min":
		min, err := strconv.Atoi(value)
		if err != nil || min < 0 {
			return fmt.Errorf("invalid minimum. Use a number of at least 0")
		}
		if min > settings.MaxPerWeek {
			return fmt.Errorf("minimum %d cannot exceed the current maximum %d", min, settings.MaxPerWeek)
		}
		settings.MinPerWeek = min
	case "max":
		max, err := strconv.Atoi(value)
		if err != nil || max < 1 {
			return fmt.Errorf("invalid maximum. Use a number of at least 1")
		}
		if max < settings.MinPerWeek {
			return fmt.Errorf("maximum %d cannot be below the current minimum %d", max, settings.MinPerWeek)
		}
		settings.MaxPerWeek = max
	case "repeat":
		on, err := parseToggle(value)
		if err != nil {
			return fmt.Errorf("invalid value for repeat. Use on or off")
		}
		settings.AvoidImmediateRepeat = on
	case "duplicate":
		on, err := parseToggle(value)
		if err != nil {
			return fmt.Errorf("invalid value for duplicate. Use on or off")
		}
		settings.NoDuplicatePerWeek = on
	case "quarterly":
		switch value {
		case "cycle":
			settings.QuarterlyPerCycle = true
		case "12w":
			settings.QuarterlyPerCycle = false
		default:
			return fmt.Errorf("invalid value for quarterly. Use cycle or 12w")
		}
	default:
		return fmt.Errorf("invalid configuration type. Use 'time', 'day', 'weeks', 'min', 'max', 'repeat', 'duplicate' or 'quarterly'")
	}

	if err := s.dm.Settings().Update(settings); err != nil {
		return err
	}

	// Notify scheduler of configuration change
	if s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}

	return nil
}

func parseToggle(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("not a toggle value: %s", value)
	}
}

func clampWeight(weight int) int {
	if weight < domain.MinChoreWeight {
		return domain.MinChoreWeight
	}
	if weight > domain.MaxChoreWeight {
		return domain.MaxChoreWeight
	}
	return weight
}

func cadenceList() string {
	names := make([]string, 0, len(entity.Cadences))
	for _, c := range entity.Cadences {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func (s *choreService) GetSettings(channelID int64) (*entity.Settings, error) {
	return s.dm.Settings().GetByChannelID(channelID)
}

func (s *choreService) PauseScheduler(channelID int64) error {
	err := s.dm.Settings().SetEnabled(channelID, false)
	if err != nil {
		return fmt.Errorf("failed to pause scheduler: %w", err)
	}

	if s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}

	return nil
}

func (s *choreService) ResumeScheduler(channelID int64) error {
	err := s.dm.Settings().SetEnabled(channelID, true)
	if err != nil {
		return fmt.Errorf("failed to resume scheduler: %w", err)
	}

	if s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}

	return nil
}

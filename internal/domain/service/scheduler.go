package service

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain/contract"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

type scheduler struct {
	dm            contract.DataManager
	slackClient   contract.SlackClient
	choreService  *choreService
	configChanged chan struct{}
	stopChan      chan struct{}
	running       bool
}

func newScheduler(dm contract.DataManager, slackClient contract.SlackClient, choreService *choreService) *scheduler {
	return &scheduler{
		dm:            dm,
		slackClient:   slackClient,
		choreService:  choreService,
		configChanged: make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		running:       false,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) NotifyConfigChange() {
	// Non-blocking send to config change channel
	select {
	case s.configChanged <- struct{}{}:
	default:
		// Channel is full, scheduler will recalculate eventually
	}
}

func (s *scheduler) mainLoop() {
	for {
		nextTime, channelIDs := s.findNextNotification()

		if len(channelIDs) == 0 {
			// No active non-paused channels - wait 1 hour and check again
			log.Println("No active channels found, waiting 1 hour...")
			timer := time.NewTimer(1 * time.Hour)
			select {
			case <-timer.C:
				continue
			case <-s.configChanged:
				timer.Stop()
				continue
			case <-s.stopChan:
				timer.Stop()
				return
			}
		}

		log.Printf("Next notification at %s for %d channels", nextTime.Format("2006-01-02 15:04:05 UTC"), len(channelIDs))

		waitDuration := time.Until(nextTime)
		if waitDuration <= 0 {
			// Time has already passed, send notifications immediately
			s.sendNotifications(channelIDs)
			// Wait 1 minute to prevent re-processing the same time
			log.Println("Sent notifications, waiting 1 minute to prevent re-processing...")
			time.Sleep(1 * time.Minute)
			continue
		}

		timer := time.NewTimer(waitDuration)

		select {
		case <-timer.C:
			// Time to send notifications
			s.sendNotifications(channelIDs)
			// Wait 1 minute to prevent re-processing the same time
			log.Println("Sent notifications, waiting 1 minute to prevent re-processing...")
			time.Sleep(1 * time.Minute)

		case <-s.configChanged:
			// Configuration changed, recalculate
			timer.Stop()
			log.Println("Configuration changed, recalculating schedule...")
			continue

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

func (s *scheduler) findNextNotification() (time.Time, []int64) {
	allSettings, err := s.dm.Settings().GetEnabled()
	if err != nil {
		log.Printf("Error getting enabled channels: %v", err)
		return time.Time{}, nil
	}

	if len(allSettings) == 0 {
		return time.Time{}, nil
	}

	now := time.Now().UTC()

	type channelNext struct {
		channelID int64
		nextTime  time.Time
	}

	var allNext []channelNext

	for _, settings := range allSettings {
		nextTime := s.calculateNextForSettings(settings, now)
		if !nextTime.IsZero() {
			allNext = append(allNext, channelNext{
				channelID: settings.ChannelID,
				nextTime:  nextTime,
			})
		}
	}

	if len(allNext) == 0 {
		return time.Time{}, nil
	}

	// Sort by time
	sort.Slice(allNext, func(i, j int) bool {
		return allNext[i].nextTime.Before(allNext[j].nextTime)
	})

	// Get earliest time
	earliestTime := allNext[0].nextTime

	// Collect all channels at the earliest time
	var channelIDs []int64
	for _, cn := range allNext {
		if cn.nextTime.Equal(earliestTime) {
			channelIDs = append(channelIDs, cn.channelID)
		} else {
			break // Since it's sorted, we can break early
		}
	}

	return earliestTime, channelIDs
}

func (s *scheduler) calculateNextForSettings(settings *entity.Settings, now time.Time) time.Time {
	parts := strings.Split(settings.NotificationTime, ":")
	if len(parts) != 2 {
		log.Printf("Invalid notification time format for channel %d: %s", settings.ChannelID, settings.NotificationTime)
		return time.Time{}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		log.Printf("Invalid hour in notification time for channel %d: %s", settings.ChannelID, parts[0])
		return time.Time{}
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		log.Printf("Invalid minute in notification time for channel %d: %s", settings.ChannelID, parts[1])
		return time.Time{}
	}

	// Try today first
	today := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	todayWeekday := int(today.Weekday())
	if todayWeekday == 0 { // Sunday = 0 in Go, but we want 7 for ISO 8601
		todayWeekday = 7
	}

	if todayWeekday == settings.NotificationDay && today.After(now) {
		return today
	}

	// Find the next occurrence of the configured weekday
	for i := 1; i <= 7; i++ {
		nextDay := today.AddDate(0, 0, i)
		nextWeekday := int(nextDay.Weekday())
		if nextWeekday == 0 {
			nextWeekday = 7
		}

		if nextWeekday == settings.NotificationDay {
			return nextDay
		}
	}

	// Should never reach here with a valid weekday configured
	log.Printf("Could not find next notification time for channel %d", settings.ChannelID)
	return time.Time{}
}

func (s *scheduler) sendNotifications(channelIDs []int64) {
	log.Printf("Sending notifications to %d channels", len(channelIDs))

	for _, channelID := range channelIDs {
		go func(cID int64) {
			if err := s.sendNotificationToChannel(cID); err != nil {
				log.Printf("Failed to send notification to channel %d: %v", cID, err)
			}
		}(channelID)
	}
}

func (s *scheduler) sendNotificationToChannel(channelID int64) error {
	channel, err := s.dm.Channel().GetByID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		return fmt.Errorf("channel not found")
	}

	settings, err := s.dm.Settings().GetByChannelID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if settings == nil {
		return fmt.Errorf("channel settings not found")
	}

	users, err := s.dm.User().GetActiveUsersByChannel(channelID)
	if err != nil {
		return fmt.Errorf("failed to get users: %w", err)
	}

	if len(users) == 0 {
		message := "🤖 *Chore Board*\n\nNo members in the rotation yet. Use `/chores add @user` to add team members!"

		_, _, err = s.slackClient.PostMessage(
			channel.SlackChannelID,
			slack.MsgOptionText(message, false),
			slack.MsgOptionAsUser(false),
		)
		return err
	}

	// The whole cycle is recomputed on every notification: the board always
	// reflects the current roster, catalog and settings.
	result, err := s.choreService.ComputeSchedule(channelID)
	if err != nil {
		return fmt.Errorf("failed to compute schedule: %w", err)
	}

	weekIndex := s.choreService.CurrentWeekIndex(settings, time.Now())
	if weekIndex >= len(result.Weeks) {
		return fmt.Errorf("week index %d out of range for %d computed weeks", weekIndex, len(result.Weeks))
	}
	week := result.Weeks[weekIndex]

	contacts := make(map[string]string, len(users))
	for _, p := range buildRoster(users) {
		contacts[p.Name] = p.Contact
	}

	message := buildWeekMessage(week, settings.CycleWeeks, contacts)

	_, _, err = s.slackClient.PostMessage(
		channel.SlackChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)

	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	log.Printf("Chore notification sent to channel %s for week %d", channel.SlackChannelID, week.Week)
	return nil
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/contract"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
	slackcmd "github.com/lucasvmx/chore-rotation-bot/internal/domain/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	choreService  contract.ChoreService
	signingSecret string
}

func New(choreService contract.ChoreService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		choreService:  choreService,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAddUser(ctx, cmd, slashCmd)
	case slackcmd.CmdRemove:
		return h.handleRemoveUser(ctx, cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleListUsers(ctx, slashCmd)
	case slackcmd.CmdChore:
		return h.handleChore(ctx, cmd, slashCmd)
	case slackcmd.CmdSchedule:
		return h.handleSchedule(ctx, slashCmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(ctx, cmd, slashCmd)
	case slackcmd.CmdPause:
		return h.handlePause(ctx, slashCmd)
	case slackcmd.CmdResume:
		return h.handleResume(ctx, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(ctx, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Use `/chores help` to see what's available")
	}
}

// setupChannel resolves the Slack channel to its stored record, creating it
// with default settings on first contact.
func (h *SlackHandler) setupChannel(ctx context.Context, slashCmd *slack.SlashCommand) (*entity.Channel, error) {
	channel, _, err := h.choreService.SetupChannel(ctx, slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	return channel, err
}

// parseUserMention extracts the Slack user id from a mention argument.
// Mentions arrive either escaped (<@U123> or <@U123|name>) or as a bare id.
func parseUserMention(arg string) (string, bool) {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "<@") && strings.HasSuffix(arg, ">") {
		id := strings.TrimSuffix(strings.TrimPrefix(arg, "<@"), ">")
		if i := strings.Index(id, "|"); i >= 0 {
			id = id[:i]
		}
		return id, id != ""
	}
	if strings.HasPrefix(arg, "U") || strings.HasPrefix(arg, "W") {
		return arg, true
	}
	return "", false
}

func (h *SlackHandler) handleAddUser(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention at least one user: `/chores add @user`")
	}

	channel, err := h.setupChannel(ctx, slashCmd)
	if err != nil {
		return h.createErrorResponse("Failed to look up channel")
	}

	var added []string
	for _, arg := range cmd.Args {
		userID, ok := parseUserMention(arg)
		if !ok {
			return h.createErrorResponse(fmt.Sprintf("Not a user mention: %s", arg))
		}

		if err := h.choreService.AddUser(channel.ID, userID); err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to add <@%s>: %v", userID, err))
		}
		added = append(added, fmt.Sprintf("<@%s>", userID))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s joined the rotation!", strings.Join(added, ", ")),
	}
}

func (h *SlackHandler) handleRemoveUser(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/chores remove @user`")
	}

	userID, ok := parseUserMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse(fmt.Sprintf("Not a user mention: %s", cmd.Args[0]))
	}

	channel, err := h.setupChannel(ctx, slashCmd)
	if err != nil {
		return h.createErrorResponse("Failed to look up channel")
	}

	if err := h.choreService.RemoveUser(channel.ID, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to remove user: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> left the rotation.", userID),
	}
}

func (h *SlackHandler) handleListUsers(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	channel, err := h.setupChannel(ctx, slashCmd)
	if err != nil {
		return h.createErrorResponse("Failed to look up channel")
	}

	users, err := h.choreService.ListUsers(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to list members")
	}

	if len(users) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No members in the rotation yet. Use `/chores add @user` to add one.",
		}
	}

	var userList strings.Builder
	userList.WriteString("*Members in the rotation:*\n")
	for i, user := range users {
		userList.WriteString(fmt.Sprintf("%d. %s\n", i+1, user.DisplayName))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         userList.String(),
	}
}

func (h *SlackHandler) handleChore(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/chores chore add|set|rm|ls ...`. See `/chores help`")
	}

	channel, err := h.setupChannel(ctx, slashCmd)
	if err != nil {
		return h.createErrorResponse("Failed to look up channel")
	}

	switch cmd.Args[0] {
	case "add":
		return h.handleChoreAdd(channel.ID, cmd.Args[1:])
	case "set":
		return h.handleChoreSet(channel.ID, cmd.Args[1:])
	case "rm", "remove":
		return h.handleChoreRemove(channel.ID, cmd.Args[1:])
	case "ls", "list":
		return h.handleChoreList(channel.ID)
	default:
		return h.createErrorResponse(fmt.Sprintf("Unknown chore subcommand: %s", cmd.Args[0]))
	}
}

func (h *SlackHandler) handleChoreAdd(channelID int64, args []string) *slack.Msg {
	name, rest := slackcmd.SplitQuotedName(args)
	if name == "" || len(rest) < 2 {
		return h.createErrorResponse("Use: `/chores chore add \"NAME\" CADENCE WEIGHT [AREA]`")
	}

	cadence := entity.Cadence(rest[0])
	weight, err := strconv.Atoi(rest[1])
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Weight must be a number between %d and %d", domain.MinChoreWeight, domain.MaxChoreWeight))
	}
	area := strings.Join(rest[2:], " ")

	chore, err := h.choreService.AddChore(channelID, name, area, weight, cadence)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to add chore: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Chore #%d added: %s", chore.ID, formatChore(chore)),
	}
}

func (h *SlackHandler) handleChoreSet(channelID int64, args []string) *slack.Msg {
	if len(args) < 1 {
		return h.createErrorResponse("Use: `/chores chore set ID \"NAME\" CADENCE WEIGHT [AREA]`")
	}

	choreID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Not a chore id: %s", args[0]))
	}

	name, rest := slackcmd.SplitQuotedName(args[1:])
	if name == "" || len(rest) < 2 {
		return h.createErrorResponse("Use: `/chores chore set ID \"NAME\" CADENCE WEIGHT [AREA]`")
	}

	cadence := entity.Cadence(rest[0])
	weight, err := strconv.Atoi(rest[1])
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Weight must be a number between %d and %d", domain.MinChoreWeight, domain.MaxChoreWeight))
	}
	area := strings.Join(rest[2:], " ")

	if err := h.choreService.UpdateChore(channelID, choreID, name, area, weight, cadence); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update chore: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Chore #%d updated.", choreID),
	}
}

func (h *SlackHandler) handleChoreRemove(channelID int64, args []string) *slack.Msg {
	if len(args) == 0 {
		return h.createErrorResponse("Use: `/chores chore rm ID`")
	}

	choreID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Not a chore id: %s", args[0]))
	}

	if err := h.choreService.RemoveChore(channelID, choreID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to remove chore: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Chore #%d removed from the catalog.", choreID),
	}
}

func (h *SlackHandler) handleChoreList(channelID int64) *slack.Msg {
	chores, err := h.choreService.ListChores(channelID)
	if err != nil {
		return h.createErrorResponse("Failed to list chores")
	}

	if len(chores) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "The chore catalog is empty. Use `/chores chore add \"NAME\" CADENCE WEIGHT [AREA]` to add one.",
		}
	}

	var list strings.Builder
	list.WriteString("*Chore catalog:*\n")
	for _, chore := range chores {
		list.WriteString(fmt.Sprintf("#%d %s\n", chore.ID, formatChore(chore)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func formatChore(chore *entity.Chore) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("*%s*", chore.Name))
	if chore.Area != "" {
		b.WriteString(fmt.Sprintf(" (%s)", chore.Area))
	}
	b.WriteString(fmt.Sprintf(" — %s, weight %d", chore.Cadence, chore.Weight))
	return b.String()
}

func (h *SlackHandler) handleSchedule(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	channel, err := h.setupChannel(ctx, slashCmd)
	if err != nil {
		return h.createErrorResponse("Failed to look up channel")
	}

	settings, err := h.choreService.GetSettings(channel.ID)
	if err != nil || settings == nil {
		return h.createErrorResponse("Failed to load channel settings")
	}

	result, err := h.choreService.ComputeSchedule(channel.ID)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Cannot compute the schedule: %v", err))
	}

	currentWeek := h.choreService.CurrentWeekIndex(settings, time.Now())

	var board strings.Builder
	board.WriteString("🧹 *Chore Board*\n")
	for i, week := range result.Weeks {
		board.WriteString(fmt.Sprintf("\n*Week %d*", week.Week))
		if i == currentWeek {
			board.WriteString(" ← current")
		}
		board.WriteString("\n")
		for _, a := range week.Assignments {
			board.WriteString(fmt.Sprintf("  • %s → %s", a.Person, a.ChoreName))
			if a.Group {
				board.WriteString(" (everyone)")
			}
			board.WriteString("\n")
		}
		for _, u := range week.Unassigned {
			board.WriteString(fmt.Sprintf("  • ⚠️ nobody → %s\n", u.ChoreName))
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         board.String(),
	}
}

func (h *SlackHandler) handleConfig(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Use: `/chores config TYPE VALUE` or `/chores config show`. See `/chores help`")
	}

	channel, err := h.setupChannel(ctx, slashCmd)
	if err != nil {
		return h.createErrorResponse("Failed to look up channel")
	}

	if cmd.Args[0] == "show" {
		return h.handleConfigShow(channel.ID)
	}

	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/chores config TYPE VALUE`. See `/chores help`")
	}

	configType := cmd.Args[0]
	configValue := strings.Join(cmd.Args[1:], " ")

	if err := h.choreService.UpdateChannelConfig(channel.ID, configType, configValue); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update configuration: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Configuration updated: %s = %s", configType, configValue),
	}
}

func (h *SlackHandler) handleConfigShow(channelID int64) *slack.Msg {
	settings, err := h.choreService.GetSettings(channelID)
	if err != nil || settings == nil {
		return h.createErrorResponse("Failed to load channel settings")
	}

	text := fmt.Sprintf(`*Channel configuration:*
• Notifications: %s at %s on %s
• Cycle length: %d week(s)
• Chores per person per week: %d to %d
• Avoid immediate repeat: %s
• No duplicate chore per week: %s
• Quarterly chores: %s`,
		onOff(settings.IsEnabled, "enabled", "paused"),
		settings.NotificationTime,
		domain.WeekdayNames[settings.NotificationDay],
		settings.CycleWeeks,
		settings.MinPerWeek,
		settings.MaxPerWeek,
		onOff(settings.AvoidImmediateRepeat, "on", "off"),
		onOff(settings.NoDuplicatePerWeek, "on", "off"),
		onOff(settings.QuarterlyPerCycle, "once per cycle", "every 12 weeks"),
	)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func onOff(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}

func (h *SlackHandler) handlePause(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	channel, err := h.setupChannel(ctx, slashCmd)
	if err != nil {
		return h.createErrorResponse("Failed to look up channel")
	}

	if err := h.choreService.PauseScheduler(channel.ID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to pause notifications: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "⏸️ Weekly chore notifications paused. Use `/chores resume` to turn them back on.",
	}
}

func (h *SlackHandler) handleResume(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	channel, err := h.setupChannel(ctx, slashCmd)
	if err != nil {
		return h.createErrorResponse("Failed to look up channel")
	}

	if err := h.choreService.ResumeScheduler(channel.ID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to resume notifications: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "▶️ Weekly chore notifications resumed.",
	}
}

func (h *SlackHandler) handleStatus(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	channel, err := h.setupChannel(ctx, slashCmd)
	if err != nil {
		return h.createErrorResponse("Failed to look up channel")
	}

	settings, err := h.choreService.GetSettings(channel.ID)
	if err != nil || settings == nil {
		return h.createErrorResponse("Failed to load channel settings")
	}

	users, err := h.choreService.ListUsers(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to list members")
	}

	chores, err := h.choreService.ListChores(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to list chores")
	}

	currentWeek := h.choreService.CurrentWeekIndex(settings, time.Now())

	text := fmt.Sprintf(`*Chore bot status:*
• Notifications: %s (%s at %s)
• Week %d of %d in the current cycle
• %d member(s) in the rotation
• %d chore(s) in the catalog`,
		onOff(settings.IsEnabled, "enabled", "paused"),
		domain.WeekdayNames[settings.NotificationDay],
		settings.NotificationTime,
		currentWeek+1,
		settings.CycleWeeks,
		len(users),
		len(chores),
	)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

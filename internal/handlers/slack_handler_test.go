package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lucasvmx/chore-rotation-bot/internal/domain"
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/entity"
	"github.com/lucasvmx/chore-rotation-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSigningSecret = "test-signing-secret"

type slashArgs struct {
	command     string
	text        string
	channelID   string
	channelName string
	userID      string
	teamID      string
}

func defaultArgs(text string) slashArgs {
	return slashArgs{
		command:     "/chores",
		text:        text,
		channelID:   "C123456789",
		channelName: "household",
		userID:      "U987654321",
		teamID:      "T123456789",
	}
}

func testChannel(args slashArgs) *entity.Channel {
	return &entity.Channel{
		ID:               1,
		SlackChannelID:   args.channelID,
		SlackChannelName: args.channelName,
		SlackTeamID:      args.teamID,
		IsActive:         true,
	}
}

func expectSetupChannel(m test.ServiceMocks, args slashArgs) {
	m.ChoreServiceMock.EXPECT().
		SetupChannel(gomock.Any(), args.channelID, args.channelName, args.teamID).
		Return(testChannel(args), false, nil).Times(1)
}

func runCommand(t *testing.T, m test.ServiceMocks, handler http.HandlerFunc, args slashArgs) *httptest.ResponseRecorder {
	t.Helper()

	req := test.CreateSlackRequest(t, args.command, args.text, args.channelID, args.channelName, args.userID, args.teamID, testSigningSecret)
	recorder := test.CreateTestRecorder()
	handler(recorder, req)
	return recorder
}

func decodeMsg(t *testing.T, recorder *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, recorder.Code)
	var response slack.Msg
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func TestSlackHandler_HandleSlashCommand_AddUser(t *testing.T) {
	tests := []struct {
		name          string
		args          slashArgs
		buildMocks    func(m test.ServiceMocks, args slashArgs)
		checkResponse func(t *testing.T, response slack.Msg)
	}{
		{
			name: "Should add user successfully",
			args: defaultArgs("add <@U123456789|testuser>"),
			buildMocks: func(m test.ServiceMocks, args slashArgs) {
				expectSetupChannel(m, args)

				m.ChoreServiceMock.EXPECT().
					AddUser(int64(1), "U123456789").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "<@U123456789> joined the rotation!")
			},
		},
		{
			name: "Should add multiple users in one command",
			args: defaultArgs("add <@U123456789|alice> <@U555555555|bob>"),
			buildMocks: func(m test.ServiceMocks, args slashArgs) {
				expectSetupChannel(m, args)

				m.ChoreServiceMock.EXPECT().
					AddUser(int64(1), "U123456789").
					Return(nil).Times(1)
				m.ChoreServiceMock.EXPECT().
					AddUser(int64(1), "U555555555").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "<@U123456789>, <@U555555555> joined the rotation!")
			},
		},
		{
			name: "Should return error when no user mentioned",
			args: defaultArgs("add"),
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Please mention at least one user")
			},
		},
		{
			name: "Should return error when argument is not a mention",
			args: defaultArgs("add somebody"),
			buildMocks: func(m test.ServiceMocks, args slashArgs) {
				expectSetupChannel(m, args)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Not a user mention")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m, tt.args)
			}

			recorder := runCommand(t, m, handler.HandleSlashCommand, tt.args)
			tt.checkResponse(t, decodeMsg(t, recorder))
		})
	}
}

func TestSlackHandler_HandleSlashCommand_RemoveUser(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	args := defaultArgs("remove <@U123456789>")
	expectSetupChannel(m, args)

	m.ChoreServiceMock.EXPECT().
		RemoveUser(int64(1), "U123456789").
		Return(nil).Times(1)

	recorder := runCommand(t, m, handler.HandleSlashCommand, args)
	response := decodeMsg(t, recorder)

	assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
	assert.Contains(t, response.Text, "<@U123456789> left the rotation.")
}

func TestSlackHandler_HandleSlashCommand_ListUsers(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	args := defaultArgs("list")
	expectSetupChannel(m, args)

	m.ChoreServiceMock.EXPECT().
		ListUsers(int64(1)).
		Return([]*entity.User{
			{ID: 1, DisplayName: "Alice"},
			{ID: 2, DisplayName: "Bob"},
		}, nil).Times(1)

	recorder := runCommand(t, m, handler.HandleSlashCommand, args)
	response := decodeMsg(t, recorder)

	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Contains(t, response.Text, "1. Alice")
	assert.Contains(t, response.Text, "2. Bob")
}

func TestSlackHandler_HandleSlashCommand_Chore(t *testing.T) {
	tests := []struct {
		name          string
		args          slashArgs
		buildMocks    func(m test.ServiceMocks, args slashArgs)
		checkResponse func(t *testing.T, response slack.Msg)
	}{
		{
			name: "Should add chore with quoted name and area",
			args: defaultArgs(`chore add "Clean kitchen" weekly 3 Kitchen`),
			buildMocks: func(m test.ServiceMocks, args slashArgs) {
				expectSetupChannel(m, args)

				m.ChoreServiceMock.EXPECT().
					AddChore(int64(1), "Clean kitchen", "Kitchen", 3, entity.CadenceWeekly).
					Return(&entity.Chore{
						ID:      7,
						Name:    "Clean kitchen",
						Area:    "Kitchen",
						Weight:  3,
						Cadence: entity.CadenceWeekly,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "Chore #7 added")
				assert.Contains(t, response.Text, "Clean kitchen")
			},
		},
		{
			name: "Should update chore",
			args: defaultArgs(`chore set 7 "Deep clean kitchen" monthly 5`),
			buildMocks: func(m test.ServiceMocks, args slashArgs) {
				expectSetupChannel(m, args)

				m.ChoreServiceMock.EXPECT().
					UpdateChore(int64(1), int64(7), "Deep clean kitchen", "", 5, entity.CadenceMonthly).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "Chore #7 updated")
			},
		},
		{
			name: "Should remove chore",
			args: defaultArgs("chore rm 7"),
			buildMocks: func(m test.ServiceMocks, args slashArgs) {
				expectSetupChannel(m, args)

				m.ChoreServiceMock.EXPECT().
					RemoveChore(int64(1), int64(7)).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "Chore #7 removed")
			},
		},
		{
			name: "Should list the catalog",
			args: defaultArgs("chore ls"),
			buildMocks: func(m test.ServiceMocks, args slashArgs) {
				expectSetupChannel(m, args)

				m.ChoreServiceMock.EXPECT().
					ListChores(int64(1)).
					Return([]*entity.Chore{
						{ID: 1, Name: "Dishes", Weight: 2, Cadence: entity.CadenceWeekly},
						{ID: 2, Name: "Windows", Area: "living room", Weight: 4, Cadence: entity.CadenceQuarterly},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "#1 *Dishes* — weekly, weight 2")
				assert.Contains(t, response.Text, "#2 *Windows* (living room) — quarterly, weight 4")
			},
		},
		{
			name: "Should reject malformed chore add",
			args: defaultArgs("chore add Dishes"),
			buildMocks: func(m test.ServiceMocks, args slashArgs) {
				expectSetupChannel(m, args)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "chore add")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m, tt.args)
			}

			recorder := runCommand(t, m, handler.HandleSlashCommand, tt.args)
			tt.checkResponse(t, decodeMsg(t, recorder))
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Schedule(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	args := defaultArgs("schedule")
	expectSetupChannel(m, args)

	settings := &entity.Settings{ID: 1, ChannelID: 1, CycleWeeks: 2}
	m.ChoreServiceMock.EXPECT().
		GetSettings(int64(1)).
		Return(settings, nil).Times(1)

	m.ChoreServiceMock.EXPECT().
		ComputeSchedule(int64(1)).
		Return(&entity.CycleResult{
			Weeks: []entity.WeekAssignment{
				{
					Week: 1,
					Assignments: []entity.Assignment{
						{Person: "Alice", ChoreID: 1, ChoreName: "Dishes"},
					},
				},
				{
					Week: 2,
					Assignments: []entity.Assignment{
						{Person: "Bob", ChoreID: 1, ChoreName: "Dishes"},
					},
					Unassigned: []entity.Unassigned{
						{ChoreID: 2, ChoreName: "Windows"},
					},
				},
			},
		}, nil).Times(1)

	m.ChoreServiceMock.EXPECT().
		CurrentWeekIndex(settings, gomock.Any()).
		Return(0).Times(1)

	recorder := runCommand(t, m, handler.HandleSlashCommand, args)
	response := decodeMsg(t, recorder)

	assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
	assert.Contains(t, response.Text, "*Week 1* ← current")
	assert.Contains(t, response.Text, "Alice → Dishes")
	assert.Contains(t, response.Text, "*Week 2*\n")
	assert.Contains(t, response.Text, "nobody → Windows")
}

func TestSlackHandler_HandleSlashCommand_Config(t *testing.T) {
	t.Run("Should update configuration", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		args := defaultArgs("config time 14:30")
		expectSetupChannel(m, args)

		m.ChoreServiceMock.EXPECT().
			UpdateChannelConfig(int64(1), "time", "14:30").
			Return(nil).Times(1)

		recorder := runCommand(t, m, handler.HandleSlashCommand, args)
		response := decodeMsg(t, recorder)

		assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
		assert.Contains(t, response.Text, "time = 14:30")
	})

	t.Run("Should show current configuration", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		args := defaultArgs("config show")
		expectSetupChannel(m, args)

		m.ChoreServiceMock.EXPECT().
			GetSettings(int64(1)).
			Return(&entity.Settings{
				ID:                   1,
				ChannelID:            1,
				NotificationTime:     "09:00",
				NotificationDay:      domain.Monday,
				IsEnabled:            true,
				CycleWeeks:           4,
				MinPerWeek:           1,
				MaxPerWeek:           3,
				AvoidImmediateRepeat: true,
				NoDuplicatePerWeek:   true,
				QuarterlyPerCycle:    true,
			}, nil).Times(1)

		recorder := runCommand(t, m, handler.HandleSlashCommand, args)
		response := decodeMsg(t, recorder)

		assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
		assert.Contains(t, response.Text, "enabled at 09:00 on Monday")
		assert.Contains(t, response.Text, "Cycle length: 4 week(s)")
		assert.Contains(t, response.Text, "1 to 3")
	})
}

func TestSlackHandler_HandleSlashCommand_PauseResume(t *testing.T) {
	t.Run("Should pause notifications", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		args := defaultArgs("pause")
		expectSetupChannel(m, args)

		m.ChoreServiceMock.EXPECT().
			PauseScheduler(int64(1)).
			Return(nil).Times(1)

		recorder := runCommand(t, m, handler.HandleSlashCommand, args)
		response := decodeMsg(t, recorder)

		assert.Contains(t, response.Text, "paused")
	})

	t.Run("Should resume notifications", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		args := defaultArgs("resume")
		expectSetupChannel(m, args)

		m.ChoreServiceMock.EXPECT().
			ResumeScheduler(int64(1)).
			Return(nil).Times(1)

		recorder := runCommand(t, m, handler.HandleSlashCommand, args)
		response := decodeMsg(t, recorder)

		assert.Contains(t, response.Text, "resumed")
	})
}

func TestSlackHandler_HandleSlashCommand_Status(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	args := defaultArgs("status")
	expectSetupChannel(m, args)

	settings := &entity.Settings{
		ID:               1,
		ChannelID:        1,
		NotificationTime: "09:00",
		NotificationDay:  domain.Friday,
		IsEnabled:        true,
		CycleWeeks:       4,
	}
	m.ChoreServiceMock.EXPECT().
		GetSettings(int64(1)).
		Return(settings, nil).Times(1)

	m.ChoreServiceMock.EXPECT().
		ListUsers(int64(1)).
		Return([]*entity.User{{ID: 1}, {ID: 2}, {ID: 3}}, nil).Times(1)

	m.ChoreServiceMock.EXPECT().
		ListChores(int64(1)).
		Return([]*entity.Chore{{ID: 1}}, nil).Times(1)

	m.ChoreServiceMock.EXPECT().
		CurrentWeekIndex(settings, gomock.Any()).
		Return(1).Times(1)

	recorder := runCommand(t, m, handler.HandleSlashCommand, args)
	response := decodeMsg(t, recorder)

	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Contains(t, response.Text, "enabled (Friday at 09:00)")
	assert.Contains(t, response.Text, "Week 2 of 4")
	assert.Contains(t, response.Text, "3 member(s)")
	assert.Contains(t, response.Text, "1 chore(s)")
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	recorder := runCommand(t, m, handler.HandleSlashCommand, defaultArgs("help"))
	response := decodeMsg(t, recorder)

	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Contains(t, response.Text, "Available Commands")
}

func TestSlackHandler_HandleSlashCommand_UnknownCommand(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	recorder := runCommand(t, m, handler.HandleSlashCommand, defaultArgs("dance"))
	response := decodeMsg(t, recorder)

	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Contains(t, response.Text, "unknown command")
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	_ = m

	args := defaultArgs("list")
	req := test.CreateSlackRequest(t, args.command, args.text, args.channelID, args.channelName, args.userID, args.teamID, "wrong-secret")
	recorder := test.CreateTestRecorder()

	handler.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

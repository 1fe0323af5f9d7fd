package service

import (
	"testing"

	"github.com/lucasvmx/chore-rotation-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockChannelRepo  *mocks.MockChannelRepo
	mockUserRepo     *mocks.MockUserRepo
	mockChoreRepo    *mocks.MockChoreRepo
	mockSettingsRepo *mocks.MockSettingsRepo
	mockSlackClient  *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	choreRepo := mocks.NewMockChoreRepo(ctrl)
	dm.EXPECT().Chore().Return(choreRepo).AnyTimes()

	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockChannelRepo:  channelRepo,
		mockUserRepo:     userRepo,
		mockChoreRepo:    choreRepo,
		mockSettingsRepo: settingsRepo,
		mockSlackClient:  slackClient,
	}

	// validate service creation
	choreService := newChore(dm, slackClient)
	require.NotNil(t, choreService)

	return
}

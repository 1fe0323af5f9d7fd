package service

import (
	"github.com/lucasvmx/chore-rotation-bot/internal/domain/contract"
)

type Instance struct {
	Chore     *choreService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient) *Instance {
	choreService := newChore(dm, slackClient)
	sched := newScheduler(dm, slackClient, choreService)
	choreService.SetScheduler(sched)

	return &Instance{
		Chore:     choreService,
		Scheduler: sched,
	}
}

package out

import (
	"context"

	notifydto "lifeagent/internal/modules/notify/dto"
	notifyin "lifeagent/internal/modules/notify/port/in"
	sweepout "lifeagent/internal/modules/sweep/port/out"
)

type NotifyAdapter struct {
	notify notifyin.Usecase
}

func NewNotifyAdapter(notify notifyin.Usecase) sweepout.Notifier {
	return &NotifyAdapter{notify: notify}
}

func (a *NotifyAdapter) Notify(ctx context.Context, title, message string) error {
	return a.notify.Notify(ctx, notifydto.NotifyInput{Source: "sweep", Title: title, Message: message}).Err()
}

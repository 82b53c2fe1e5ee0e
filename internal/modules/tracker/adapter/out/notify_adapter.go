package out

import (
	"context"

	notifydto "lifeagent/internal/modules/notify/dto"
	notifyin "lifeagent/internal/modules/notify/port/in"
	"lifeagent/internal/modules/tracker/domain"
	trackerout "lifeagent/internal/modules/tracker/port/out"
)

type NotifyAdapter struct {
	usecase notifyin.Usecase
}

func NewNotifyAdapter(usecase notifyin.Usecase) trackerout.Notifier {
	return &NotifyAdapter{usecase: usecase}
}

func (a *NotifyAdapter) Notify(ctx context.Context, notification domain.Notification) error {
	result := a.usecase.Notify(ctx, notifydto.NotifyInput{
		Source:  "tracker",
		Title:   notification.Title,
		Message: notification.Message,
	})
	return result.Err()
}

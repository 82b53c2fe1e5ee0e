package out

import (
	"context"

	alertout "lifeagent/internal/modules/alert/port/out"
	notifydto "lifeagent/internal/modules/notify/dto"
	notifyin "lifeagent/internal/modules/notify/port/in"
)

type NotifyAdapter struct {
	usecase notifyin.Usecase
}

func NewNotifyAdapter(usecase notifyin.Usecase) alertout.Notifier {
	return &NotifyAdapter{usecase: usecase}
}

func (a *NotifyAdapter) Notify(ctx context.Context, title, message string) error {
	return a.usecase.Notify(ctx, notifydto.NotifyInput{Source: "alert", Title: title, Message: message}).Err()
}

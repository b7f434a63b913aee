package worker

import (
	"github.com/spec-kit/event-planner/internal/service"
)

// StartNotificationWorker subscribes the notification service to the
// booking lifecycle events. Delivery is synchronous with the publishing
// request; there is no background queue to drain, so "starting" the worker
// is just handler registration.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

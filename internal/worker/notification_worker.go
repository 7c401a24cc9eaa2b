package worker

import (
	"github.com/spec-kit/staff-directory/internal/service"
)

// StartNotificationWorker registers the staff change handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

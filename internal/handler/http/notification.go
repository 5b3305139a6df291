package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lgu-hris/payroll-backend-go/internal/domain/notification"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/lgu-hris/payroll-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	ListMine(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationRepo notification.Repository
}

func NewNotificationHandler(notificationRepo notification.Repository) NotificationHandler {
	return &notificationHandlerImpl{notificationRepo: notificationRepo}
}

func (h *notificationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == nil {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread_only"))
	notifications, err := h.notificationRepo.ListByUser(r.Context(), *userID, unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		results = append(results, notification.ToResponse(n))
	}
	response.Success(w, results)
}

func (h *notificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationRepo.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked read", nil)
}

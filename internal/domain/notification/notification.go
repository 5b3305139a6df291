// Package notification defines the dispatcher informed after payroll and
// benefit processing. Delivery is best effort; computation correctness never
// depends on it.
package notification

import (
	"context"
	"time"
)

type Notification struct {
	ID        string
	UserID    *string
	Type      string
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

const (
	TypePayrollProcessed  = "payroll_processed"
	TypePayrollFinalized  = "payroll_finalized"
	TypePayrollCancelled  = "payroll_cancelled"
	TypeBenefitCalculated = "benefit_calculated"
	TypeDTRImported       = "dtr_imported"
)

type CreateRequest struct {
	UserID  *string
	Type    string
	Title   string
	Message string
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

type Repository interface {
	BulkInsert(ctx context.Context, notifications []Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// Dispatcher accepts notifications without blocking the caller.
type Dispatcher interface {
	Notify(req CreateRequest)
	Close()
}

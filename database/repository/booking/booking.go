package booking

import (
	"context"

	"hogarlink/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	List(ctx context.Context, limit int64) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

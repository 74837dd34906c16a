package notification

import (
	"context"
	"fmt"

	"hogarlink/models"
	"hogarlink/services/currency"
	userSvc "hogarlink/services/user"
	"hogarlink/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendBookingReceipt(ctx context.Context, booking models.Booking) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users     userSvc.UserService
	Formatter currency.Formatter
}

func NewDefaultNotificationService(users userSvc.UserService) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user service is nil")
	}
	return &DefaultNotificationService{Users: users, Formatter: currency.LocaleFormatter{}}, nil
}

// SendBookingReceipt looks up the customer's FCM token and pushes a receipt
// for the confirmed booking.
func (s *DefaultNotificationService) SendBookingReceipt(ctx context.Context, booking models.Booking) error {
	u, err := s.Users.GetUserByID(ctx, booking.UserID)
	if err != nil {
		return fmt.Errorf("SendBookingReceipt: could not find user %s: %w", booking.UserID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendBookingReceipt: user %s has no FCM token", booking.UserID)
	}

	amount := s.Formatter.Format(float64(booking.FixedPriceTotal)/100, models.CurrencyMXN, models.LocaleEsMX)
	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: "Booking confirmed",
			Body:  fmt.Sprintf("%s: %s charged.", booking.ServiceName, amount),
		},
		Data: map[string]string{
			"bookingId": booking.ID,
			"serviceId": booking.ServiceID,
			"total":     amount,
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendBookingReceipt: failed to send FCM message: %w", err)
	}
	return nil
}

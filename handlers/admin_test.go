package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hogarlink/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	statusUpdates map[string]string
	missing       bool
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error { return nil }
func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}
func (r *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) List(ctx context.Context, limit int64) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if r.missing {
		return errors.New("booking not found")
	}
	if r.statusUpdates == nil {
		r.statusUpdates = make(map[string]string)
	}
	r.statusUpdates[id] = status
	return nil
}

func statusRequest(t *testing.T, h *AdminHandler, bookingID, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: bookingID}}
	c.Request = httptest.NewRequest(http.MethodPut, "/api/admin/bookings/"+bookingID+"/status", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.UpdateBookingStatusHandler(c)
	return w
}

func TestUpdateBookingStatusCancels(t *testing.T) {
	repo := &fakeBookingRepo{}
	h := NewAdminHandler(repo, nil)

	w := statusRequest(t, h, "bk-1", `{"status":"cancelled"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.BookingStatusCancelled, repo.statusUpdates["bk-1"])
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{}
	h := NewAdminHandler(repo, nil)

	w := statusRequest(t, h, "bk-1", `{"status":"archived"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.statusUpdates)
}

func TestUpdateBookingStatusMissingBooking(t *testing.T) {
	repo := &fakeBookingRepo{missing: true}
	h := NewAdminHandler(repo, nil)

	w := statusRequest(t, h, "ghost", `{"status":"cancelled"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

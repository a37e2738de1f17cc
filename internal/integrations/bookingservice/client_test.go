package bookingservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_GetBooking(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/internal/bookings/bk-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "bk-1",
			"diver_id": "diver-7",
			"check_in": "2024-12-26T08:00:00Z",
			"check_out": "2024-12-28T18:00:00Z",
			"course_id": "owd"
		}`))
	})
	mux.HandleFunc("/internal/bookings/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/internal/bookings/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mux.HandleFunc("/internal/bookings/garbage", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	t.Run("found", func(t *testing.T) {
		booking, err := client.GetBooking(context.Background(), "bk-1")
		require.NoError(t, err)
		assert.Equal(t, "bk-1", booking.ID)
		assert.Equal(t, "diver-7", booking.DiverID)
		assert.Equal(t, time.Date(2024, 12, 26, 8, 0, 0, 0, time.UTC), booking.Window.Start.UTC())
		assert.Equal(t, time.Date(2024, 12, 28, 18, 0, 0, 0, time.UTC), booking.Window.End.UTC())
		require.NotNil(t, booking.CourseID)
		assert.Equal(t, "owd", *booking.CourseID)
		assert.Nil(t, booking.AccommodationID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.GetBooking(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("upstream failure is retryable", func(t *testing.T) {
		_, err := client.GetBooking(context.Background(), "broken")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := client.GetBooking(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestClient_GetBooking_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, 200*time.Millisecond, nopLogger{})
	_, err := client.GetBooking(context.Background(), "bk-1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

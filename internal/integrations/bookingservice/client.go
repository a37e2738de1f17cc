package bookingservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

// Client клиент для чтения бронирований из BookingService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BookingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/internal/bookings/%s", c.baseURL, url.PathEscape(bookingID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("BookingService request failed for booking_id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrBookingNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("BookingService returned status=%d for booking_id=%s", resp.StatusCode, bookingID)
		return nil, fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return booking.ToDomain(), nil
}

package bookingservice

import (
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

// Booking модель бронирования из BookingService
type Booking struct {
	ID              string    `json:"id"`
	DiverID         string    `json:"diver_id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	CourseID        *string   `json:"course_id,omitempty"`
	GroupID         *string   `json:"group_id,omitempty"`
	AccommodationID *string   `json:"accommodation_id,omitempty"`
}

// ToDomain преобразует ответ сервиса в доменную модель
func (b *Booking) ToDomain() *domain.Booking {
	return &domain.Booking{
		ID:              b.ID,
		DiverID:         b.DiverID,
		Window:          domain.NewWindow(b.CheckIn, b.CheckOut),
		CourseID:        b.CourseID,
		GroupID:         b.GroupID,
		AccommodationID: b.AccommodationID,
	}
}

// ErrorResponse модель ошибки от BookingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

package bookingservice

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в BookingService
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")

	// ErrUnavailable возвращается, когда BookingService недоступен (сеть, таймаут, 5xx).
	// Операцию можно повторить.
	ErrUnavailable = errors.New("bookingservice client: service unavailable")
)

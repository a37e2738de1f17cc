package domain

// Booking бронирование дайвера. Принадлежит внешнему процессу бронирования,
// движок читает его только как контекст и якорь для назначений.
type Booking struct {
	ID              string
	DiverID         string
	Window          Window // check-in / check-out, End может совпадать со Start
	CourseID        *string
	GroupID         *string
	AccommodationID *string
}

// DefaultWindow окно бронирования, если оно пригодно как окно назначения
func (b *Booking) DefaultWindow() (Window, bool) {
	if b.Window.IsZero() || b.Window.IsEmpty() {
		return Window{}, false
	}
	return b.Window, true
}

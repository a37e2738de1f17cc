package memory

import (
	"sync"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

// Store хранилище в памяти процесса для локального запуска и тестов.
// Каждый метод атомарен относительно остальных; атомарность проверки и записи
// для одного ресурса обеспечивает вызывающий код (блокировка по ключу ресурса).
type Store struct {
	mu sync.RWMutex

	equipment map[string]domain.EquipmentItem
	staff     map[string]domain.StaffMember
	bookings  map[string]domain.Booking
	rentals   map[string]domain.RentalAssignment
	staffing  map[string]domain.StaffAssignment

	// порядок вставки для стабильной выдачи списков
	rentalOrder   []string
	staffingOrder []string
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		equipment: make(map[string]domain.EquipmentItem),
		staff:     make(map[string]domain.StaffMember),
		bookings:  make(map[string]domain.Booking),
		rentals:   make(map[string]domain.RentalAssignment),
		staffing:  make(map[string]domain.StaffAssignment),
	}
}

// PutEquipment добавляет или заменяет позицию каталога снаряжения
func (s *Store) PutEquipment(item domain.EquipmentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment[item.ID] = item
}

// PutStaff добавляет или заменяет сотрудника
func (s *Store) PutStaff(member domain.StaffMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff[member.ID] = member
}

// PutBooking добавляет или заменяет бронирование
func (s *Store) PutBooking(booking domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.ID] = booking
}

// Catalog представление каталога ресурсов
func (s *Store) Catalog() *Catalog {
	return &Catalog{s: s}
}

// Rentals представление аренд снаряжения
func (s *Store) Rentals() *Rentals {
	return &Rentals{s: s}
}

// StaffAssignments представление назначений сотрудников
func (s *Store) StaffAssignments() *StaffAssignments {
	return &StaffAssignments{s: s}
}

// Bookings представление бронирований
func (s *Store) Bookings() *Bookings {
	return &Bookings{s: s}
}

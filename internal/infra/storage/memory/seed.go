package memory

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

var (
	// ErrLoadSeed возвращается при ошибке чтения seed-файла
	ErrLoadSeed = errors.New("memory.seed: failed to load seed file")

	// ErrInvalidSeed возвращается при некорректных данных в seed-файле
	ErrInvalidSeed = errors.New("memory.seed: invalid seed data")
)

// Seed начальное содержимое хранилища в памяти
type Seed struct {
	Equipment []EquipmentSeed `toml:"equipment"`
	Staff     []StaffSeed     `toml:"staff"`
	Bookings  []BookingSeed   `toml:"bookings"`
}

// EquipmentSeed позиция каталога снаряжения
type EquipmentSeed struct {
	ID              string  `toml:"id"`
	Name            string  `toml:"name"`
	Category        string  `toml:"category"`
	QuantityInStock int     `toml:"quantity_in_stock"`
	Rentable        bool    `toml:"rentable"`
	DailyRentRate   float64 `toml:"daily_rent_rate"`
}

// StaffSeed сотрудник
type StaffSeed struct {
	ID                  string     `toml:"id"`
	Name                string     `toml:"name"`
	Role                string     `toml:"role"`
	Availability        string     `toml:"availability"`
	CertificationExpiry *time.Time `toml:"certification_expiry"`
}

// BookingSeed бронирование
type BookingSeed struct {
	ID              string    `toml:"id"`
	DiverID         string    `toml:"diver_id"`
	CheckIn         time.Time `toml:"check_in"`
	CheckOut        time.Time `toml:"check_out"`
	CourseID        *string   `toml:"course_id"`
	GroupID         *string   `toml:"group_id"`
	AccommodationID *string   `toml:"accommodation_id"`
}

// LoadSeed читает seed-файл в формате TOML
func LoadSeed(path string) (*Seed, error) {
	var seed Seed
	if _, err := toml.DecodeFile(path, &seed); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadSeed, path, err)
	}
	return &seed, nil
}

// Apply проверяет seed и загружает его в хранилище
func (seed *Seed) Apply(s *Store) error {
	now := time.Now().UTC()

	for _, e := range seed.Equipment {
		if e.ID == "" || e.QuantityInStock < 0 || e.DailyRentRate < 0 {
			return fmt.Errorf("%w: equipment id=%q", ErrInvalidSeed, e.ID)
		}
		s.PutEquipment(domain.EquipmentItem{
			ID:              e.ID,
			Name:            e.Name,
			Category:        e.Category,
			QuantityInStock: e.QuantityInStock,
			Rentable:        e.Rentable,
			DailyRentRate:   e.DailyRentRate,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	for _, m := range seed.Staff {
		role := domain.StaffRole(m.Role)
		if m.ID == "" || !domain.IsValidStaffRole(role) {
			return fmt.Errorf("%w: staff id=%q role=%q", ErrInvalidSeed, m.ID, m.Role)
		}
		availability := domain.StaffAvailability(m.Availability)
		switch availability {
		case "":
			availability = domain.StaffAvailable
		case domain.StaffAvailable, domain.StaffUnavailable:
		default:
			return fmt.Errorf("%w: staff id=%q availability=%q", ErrInvalidSeed, m.ID, m.Availability)
		}
		s.PutStaff(domain.StaffMember{
			ID:                  m.ID,
			Name:                m.Name,
			Role:                role,
			Availability:        availability,
			CertificationExpiry: m.CertificationExpiry,
			CreatedAt:           now,
			UpdatedAt:           now,
		})
	}

	for _, b := range seed.Bookings {
		if b.ID == "" || b.CheckOut.Before(b.CheckIn) {
			return fmt.Errorf("%w: booking id=%q", ErrInvalidSeed, b.ID)
		}
		s.PutBooking(domain.Booking{
			ID:              b.ID,
			DiverID:         b.DiverID,
			Window:          domain.NewWindow(b.CheckIn, b.CheckOut),
			CourseID:        b.CourseID,
			GroupID:         b.GroupID,
			AccommodationID: b.AccommodationID,
		})
	}

	return nil
}

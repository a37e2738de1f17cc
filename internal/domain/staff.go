package domain

import "time"

// StaffRole роль сотрудника
type StaffRole string

const (
	RoleInstructor StaffRole = "instructor"
	RoleDivemaster StaffRole = "divemaster"
	RoleBoatStaff  StaffRole = "boat_staff"
)

// StaffAvailability ручной флаг доступности, не зависит от расписания
type StaffAvailability string

const (
	StaffAvailable   StaffAvailability = "available"
	StaffUnavailable StaffAvailability = "unavailable"
)

// StaffMember сотрудник дайв-центра
type StaffMember struct {
	ID                  string
	Name                string
	Role                StaffRole
	Availability        StaffAvailability
	CertificationExpiry *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsAvailable true, если сотрудника можно назначать
func (s *StaffMember) IsAvailable() bool {
	return s.Availability == StaffAvailable
}

// CertifiedThrough проверяет, что сертификат действует на момент t.
// Дата истечения включительно: сертификат действует до конца этого дня.
func (s *StaffMember) CertifiedThrough(t time.Time) bool {
	if s.CertificationExpiry == nil {
		return true
	}
	exp := *s.CertificationExpiry
	endOfDay := time.Date(exp.Year(), exp.Month(), exp.Day(), 0, 0, 0, 0, exp.Location()).Add(certificationGracePeriod)
	return !t.After(endOfDay)
}

// Exclusivity правило распределения времени сотрудника
func (s *StaffMember) Exclusivity() ExclusivePolicy {
	return ExclusivePolicy{}
}

// IsValidStaffRole проверяет роль
func IsValidStaffRole(role StaffRole) bool {
	switch role {
	case RoleInstructor, RoleDivemaster, RoleBoatStaff:
		return true
	}
	return false
}

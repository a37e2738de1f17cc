package domain

// ResourceKind тип распределяемого ресурса
type ResourceKind string

const (
	ResourceEquipment ResourceKind = "equipment"
	ResourceStaff     ResourceKind = "staff"
)

// ResourceKey ключ ресурса - область атомарности операций резервирования
type ResourceKey struct {
	Kind ResourceKind
	ID   string
}

// EquipmentKey ключ единицы каталога снаряжения
func EquipmentKey(id string) ResourceKey {
	return ResourceKey{Kind: ResourceEquipment, ID: id}
}

// StaffKey ключ сотрудника
func StaffKey(id string) ResourceKey {
	return ResourceKey{Kind: ResourceStaff, ID: id}
}

func (k ResourceKey) String() string {
	return string(k.Kind) + ":" + k.ID
}

// Holding активное занятие ресурса (аренда или назначение сотрудника)
type Holding struct {
	AssignmentID string
	Units        int
	Window       Window
}

// Claim запрос на занятие ресурса
type Claim struct {
	Units  int
	Window Window
	// ExcludeAssignmentID не учитывается при проверке (перенос существующего назначения)
	ExcludeAssignmentID string
}

// AllocationPolicy правило допуска нового занятия ресурса с учётом уже активных
type AllocationPolicy interface {
	Admit(claim Claim, held []Holding) error
}

// CapacityPolicy счётная ёмкость: сумма активных единиц не превышает Capacity
type CapacityPolicy struct {
	Capacity int
}

// Free количество свободных единиц, никогда не отрицательное
func (p CapacityPolicy) Free(held []Holding) int {
	free := p.Capacity - TotalUnits(held, "")
	if free < 0 {
		return 0
	}
	return free
}

// Admit допускает claim, если свободных единиц не меньше запрошенного
func (p CapacityPolicy) Admit(claim Claim, held []Holding) error {
	free := p.Capacity - TotalUnits(held, claim.ExcludeAssignmentID)
	if free < 0 {
		free = 0
	}
	if claim.Units > free {
		return &InsufficientAvailabilityError{Requested: claim.Units, Available: free}
	}
	return nil
}

// ExclusivePolicy взаимное исключение: активные окна не пересекаются
type ExclusivePolicy struct{}

// Admit допускает claim, если его окно не пересекается ни с одним активным
func (ExclusivePolicy) Admit(claim Claim, held []Holding) error {
	if conflict, ok := FindOverlap(claim.Window, held, claim.ExcludeAssignmentID); ok {
		return &ScheduleConflictError{
			ConflictingAssignmentID: conflict.AssignmentID,
			ConflictingWindow:       conflict.Window,
		}
	}
	return nil
}

// FindOverlap возвращает первое занятие, пересекающееся с окном
func FindOverlap(w Window, held []Holding, excludeAssignmentID string) (Holding, bool) {
	for _, h := range held {
		if excludeAssignmentID != "" && h.AssignmentID == excludeAssignmentID {
			continue
		}
		if h.Window.Overlaps(w) {
			return h, true
		}
	}
	return Holding{}, false
}

// TotalUnits сумма единиц по занятиям
func TotalUnits(held []Holding, excludeAssignmentID string) int {
	total := 0
	for _, h := range held {
		if excludeAssignmentID != "" && h.AssignmentID == excludeAssignmentID {
			continue
		}
		total += h.Units
	}
	return total
}

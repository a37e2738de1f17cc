package availability

// Availability состояние ёмкости снаряжения на момент чтения
type Availability struct {
	EquipmentID string
	InStock     int
	Allocated   int
	Available   int
}

package reschedule_staff

// RescheduleStaffRequest HTTP request model
type RescheduleStaffRequest struct {
	WindowStart string `json:"windowStart"`
	WindowEnd   string `json:"windowEnd"`
}

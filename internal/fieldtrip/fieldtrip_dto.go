package fieldtrip

// FieldTrip is an off-campus work period for an employee, tracked
// separately from daily attendance.
type FieldTrip struct {
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Description string `json:"description,omitempty"`
}

type SaveFieldTripsRequest struct {
	FieldTrips []FieldTrip `json:"fieldTrips" binding:"required,dive"`
}

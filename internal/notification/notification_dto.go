package notification

// Notification is a pending HR data request. Month and year are
// string-typed on the wire.
type Notification struct {
	Month   string `json:"month"`
	Year    string `json:"year"`
	Message string `json:"message,omitempty"`
}

type listResponse struct {
	Success bool           `json:"success"`
	Data    []Notification `json:"data"`
}

// SubmitDataRequest forwards attendance data to HR: the whole roster when
// SendAll is set, otherwise only the selected employee numbers.
type SubmitDataRequest struct {
	Month             int      `json:"month" binding:"required,min=1,max=12"`
	Year              int      `json:"year" binding:"required,min=2000"`
	SendAll           bool     `json:"sendAll"`
	SelectedEmployees []string `json:"selectedEmployees,omitempty"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

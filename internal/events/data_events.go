package events

import "time"

const (
	DataRequestedTopic = "hr.attendance.request.v1"
	DataSubmittedTopic = "hr.attendance.submission.v1"
)

// DataRequestedEvent is emitted when the poller first observes a pending
// HR request for a period.
type DataRequestedEvent struct {
	EventType  string    `json:"event_type"`
	Month      string    `json:"month"`
	Year       string    `json:"year"`
	ObservedAt time.Time `json:"observed_at"`
}

// DataSubmittedEvent is emitted after attendance data is successfully
// forwarded to HR.
type DataSubmittedEvent struct {
	EventType     string    `json:"event_type"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	SendAll       bool      `json:"send_all"`
	EmployeeCount int       `json:"employee_count"`
	SubmittedBy   string    `json:"submitted_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}

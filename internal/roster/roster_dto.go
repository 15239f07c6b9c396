package roster

type Photo struct {
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

type Audio struct {
	URL      string   `json:"url"`
	Duration *float64 `json:"duration,omitempty"`
}

type Location struct {
	TakenLocation *string  `json:"takenLocation,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	County        *string  `json:"county,omitempty"`
	State         *string  `json:"state,omitempty"`
	Postcode      *string  `json:"postcode,omitempty"`
	Address       *string  `json:"address,omitempty"`
}

// Attendance is one day's record for one user. At most one exists per
// (user, calendar date) in a query result.
type Attendance struct {
	Date           string    `json:"date"`
	CheckinTime    string    `json:"checkinTime"`
	CheckoutTime   *string   `json:"checkoutTime,omitempty"`
	SessionType    string    `json:"sessionType,omitempty"`    // FN or AF
	AttendanceType string    `json:"attendanceType,omitempty"` // FULL_DAY or HALF_DAY
	LocationType   string    `json:"locationType,omitempty"`   // CAMPUS or FIELDTRIP
	TakenLocation  *string   `json:"takenLocation,omitempty"`
	Photo          *Photo    `json:"photo,omitempty"`
	Audio          *Audio    `json:"audio,omitempty"`
	Location       *Location `json:"location,omitempty"`
	IsCheckedOut   bool      `json:"isCheckedOut"`
	IsFullDay      bool      `json:"isFullDay"`
	IsHalfDay      bool      `json:"isHalfDay"`
}

type Project struct {
	ProjectCode string `json:"projectCode"`
	Department  string `json:"department"`
}

type MonthlyStatistics struct {
	TotalDays     int `json:"totalDays"`
	FullDays      int `json:"fullDays"`
	HalfDays      int `json:"halfDays"`
	NotCheckedOut int `json:"notCheckedOut"`
}

// User is an immutable snapshot for one queried month; its attendance
// list is scoped to that month.
type User struct {
	EmployeeNumber     string            `json:"employeeNumber"`
	Username           string            `json:"username"`
	EmpClass           string            `json:"empClass"`
	DateOfResign       *string           `json:"dateOfResign,omitempty"`
	Projects           []Project         `json:"projects"`
	HasActiveFieldTrip bool              `json:"hasActiveFieldTrip"`
	MonthlyStatistics  MonthlyStatistics `json:"monthlyStatistics"`
	Attendances        []Attendance      `json:"attendances"`
}

// UserAttendance tags an attendance record with its owner's username for
// per-date views.
type UserAttendance struct {
	Attendance
	Username string `json:"username"`
}

// MonthlyRoster is the upstream users-attendance response.
type MonthlyRoster struct {
	Success    bool   `json:"success"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	TotalUsers int    `json:"totalUsers"`
	Data       []User `json:"data"`
}

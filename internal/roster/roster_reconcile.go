package roster

import (
	"strings"
	"time"
)

// ParseRecordDate accepts the two date shapes the upstream emits:
// RFC3339 timestamps and bare calendar dates.
func ParseRecordDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// SameUTCDay compares the UTC year/month/day triples of two instants.
func SameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// AttendancesOn returns every attendance record matching the given date,
// tagged with its owner's username.
func AttendancesOn(users []User, date time.Time) []UserAttendance {
	matches := []UserAttendance{}
	for _, u := range users {
		for _, att := range u.Attendances {
			recorded, ok := ParseRecordDate(att.Date)
			if !ok {
				continue
			}
			if SameUTCDay(recorded, date) {
				matches = append(matches, UserAttendance{Attendance: att, Username: u.Username})
			}
		}
	}
	return matches
}

// DeriveAbsentees returns the users with no attendance on the selected
// date. A user is absent iff the date is not a weekend AND their username
// is not in the present set. Weekends mark nobody absent regardless of
// attendance data. Duplicate roster entries are evaluated independently.
func DeriveAbsentees(users []User, date time.Time, present []UserAttendance) []User {
	if date.IsZero() {
		return []User{}
	}

	presentUsernames := make(map[string]struct{}, len(present))
	for _, att := range present {
		presentUsernames[att.Username] = struct{}{}
	}

	weekday := date.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday

	absentees := []User{}
	for _, u := range users {
		if _, hasAttendance := presentUsernames[u.Username]; hasAttendance || isWeekend {
			continue
		}
		absentees = append(absentees, u)
	}
	return absentees
}

// Filter narrows the roster by a case-insensitive substring match on
// username or employee number. An empty query returns everything.
func Filter(users []User, query string) []User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users
	}

	filtered := []User{}
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.EmployeeNumber), q) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

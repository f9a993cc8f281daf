package models

// TimetableEntry defines one scheduled slot based on the 'timetables' table
type TimetableEntry struct {
	ID         int64  `json:"id" db:"id"`
	Day        string `json:"day" db:"day"` // Monday, Tuesday, ...
	TimeSlot   string `json:"timeSlot" db:"time_slot"`
	Subject    string `json:"subject" db:"subject"`
	FacultyID  *int64 `json:"facultyId,omitempty" db:"faculty_id"`
	Classroom  string `json:"classroom,omitempty" db:"classroom"`
	Department string `json:"department,omitempty" db:"department"`
}

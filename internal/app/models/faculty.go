package models

// Faculty represents a faculty at the university.
type Faculty struct {
	ID   int64  `json:"id" db:"faculty_id"`
	Name string `json:"name" db:"faculty_name"`
}

// FacultyMember represents an academic staff member attached to a faculty.
type FacultyMember struct {
	ID             int64  `json:"id" db:"member_id"`
	FacultyID      int64  `json:"facultyId" db:"faculty_id"`
	Name           string `json:"name" db:"name"`
	Designation    string `json:"designation" db:"designation"`
	Specialization string `json:"specialization" db:"specialization"`
	Email          string `json:"email" db:"email"`
}

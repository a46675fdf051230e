package models

// Program represents a degree program offered by the university.
type Program struct {
	ID              int64   `json:"id" db:"program_id"`
	Name            string  `json:"name" db:"program_name"`
	Level           string  `json:"level" db:"level"`
	DurationYears   float64 `json:"durationYears" db:"duration_years"`
	FacultyID       int64   `json:"facultyId" db:"faculty_id"`
	Description     *string `json:"description,omitempty" db:"description"` // Nullable
	CareerProspects *string `json:"careerProspects,omitempty" db:"career_prospects"`

	// Populated by joined queries when needed
	FacultyName string `json:"facultyName,omitempty"`
}

// Subject represents a subject taught within a program.
type Subject struct {
	ID          int64  `json:"id" db:"subject_id"`
	Name        string `json:"name" db:"subject_name"`
	CreditHours int    `json:"creditHours" db:"credit_hours"`
}

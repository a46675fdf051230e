package models

import "time"

// AdmissionRequirement represents one entry qualification accepted for a program.
type AdmissionRequirement struct {
	ID                     int64   `json:"id" db:"requirement_id"`
	ProgramID              int64   `json:"programId" db:"program_id"`
	QualificationType      string  `json:"qualificationType" db:"qualification_type"`
	MinimumGrade           string  `json:"minimumGrade" db:"minimum_grade"`
	AdditionalRequirements *string `json:"additionalRequirements,omitempty" db:"additional_requirements"`
}

// ChecklistItem represents one document required when applying to a program.
type ChecklistItem struct {
	ID           int64  `json:"id" db:"checklist_id"`
	ProgramID    int64  `json:"programId" db:"program_id"`
	DocumentName string `json:"documentName" db:"document_name"`
	IsMandatory  bool   `json:"isMandatory" db:"is_mandatory"`
}

// ImportantDate represents a dated admission or academic calendar entry for a program.
type ImportantDate struct {
	ID          int64      `json:"id" db:"date_id"`
	ProgramID   int64      `json:"programId" db:"program_id"`
	EventType   string     `json:"eventType" db:"event_type"`
	StartDate   *time.Time `json:"startDate,omitempty" db:"start_date"`
	Description *string    `json:"description,omitempty" db:"description"`
}

// Application represents a submitted admission application, keyed by its
// opaque reference number rather than any numeric ID.
type Application struct {
	ReferenceNumber string  `json:"referenceNumber" db:"reference_number"`
	Status          string  `json:"status" db:"status"`
	Remarks         *string `json:"remarks,omitempty" db:"remarks"`
}

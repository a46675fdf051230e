package models

import "time"

// TuitionFee represents the fee charged for one semester of a program.
type TuitionFee struct {
	ID        int64   `json:"id" db:"fee_id"`
	ProgramID int64   `json:"programId" db:"program_id"`
	Semester  int     `json:"semester" db:"semester"`
	Amount    float64 `json:"amount" db:"amount"`
	Currency  string  `json:"currency" db:"currency"`
}

// FeeTotal is the sum of a program's fee rows for one currency.
type FeeTotal struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// Scholarship represents a scholarship open for application.
type Scholarship struct {
	ID       int64      `json:"id" db:"scholarship_id"`
	Name     string     `json:"name" db:"scholarship_name"`
	Amount   float64    `json:"amount" db:"amount"`
	Deadline *time.Time `json:"deadline,omitempty" db:"application_deadline"`
}

// FinancialAid represents a financial aid option such as a loan or work-study scheme.
type FinancialAid struct {
	ID                  int64  `json:"id" db:"aid_id"`
	Name                string `json:"name" db:"aid_name"`
	Type                string `json:"type" db:"aid_type"`
	EligibilityCriteria string `json:"eligibilityCriteria" db:"eligibility_criteria"`
}

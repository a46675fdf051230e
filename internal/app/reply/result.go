// Package reply defines the structured results produced by the query plans
// and the formatter that renders them into the single text block returned to
// the conversational platform.
package reply

import "github.com/aiman/admitbot/internal/app/models"

// Result is the closed set of structured outcomes a query plan can produce.
// Every fallible lookup is resolved into one of these shapes before
// formatting; the formatter itself cannot fail.
type Result interface {
	isResult()
}

// Fallback is returned for intents the router does not recognize.
type Fallback struct{}

// Welcome greets the user and lists what the assistant can do.
type Welcome struct{}

// ProgramList is the outcome of a program search. An empty Programs slice is
// a meaningful state, not an error.
type ProgramList struct {
	Programs []models.Program
}

// ProgramDetails composes a resolved program with its faculty name and key
// subjects. Missing dependent data (no subjects, unknown faculty) is carried
// as zero values and rendered with placeholders.
type ProgramDetails struct {
	Found       bool
	Query       string // the identifier the user supplied, echoed on not-found
	Program     models.Program
	FacultyName string
	Subjects    []models.Subject
}

// ComparisonEntry is one side of a program comparison.
type ComparisonEntry struct {
	Program models.Program
	Total   *models.FeeTotal // nil when the program has no fee rows
}

// ProgramComparison is the outcome of comparing two programs.
type ProgramComparison struct {
	TooFewIDs bool // fewer than two valid identifiers supplied
	Missing   bool // one or both programs absent from the store
	Left      ComparisonEntry
	Right     ComparisonEntry
}

// FacultyMembers lists academic staff for a faculty.
type FacultyMembers struct {
	Faculty string
	Members []models.FacultyMember
}

// AdmissionRequirements lists entry requirements for a resolved program.
type AdmissionRequirements struct {
	Found        bool
	Query        string
	ProgramName  string
	Requirements []models.AdmissionRequirement
}

// ImportantDates carries a program's calendar entries. Generic is set when no
// program identifier was supplied and only the static intake periods apply.
type ImportantDates struct {
	Generic     bool
	Found       bool
	ProgramName string
	Trimester   []models.ImportantDate // rows classified as trimester calendar entries
	Other       []models.ImportantDate // remaining rows
}

// ApplicationProcedure is the static how-to-apply walkthrough.
type ApplicationProcedure struct{}

// DocumentChecklist lists the documents required for a resolved program.
type DocumentChecklist struct {
	Found       bool
	ProgramName string
	Items       []models.ChecklistItem
}

// ApplicationStatus is the outcome of a reference-number lookup.
type ApplicationStatus struct {
	Found       bool
	Application models.Application
}

// TuitionFees lists a resolved program's per-semester fees.
type TuitionFees struct {
	Found       bool
	ProgramName string
	Fees        []models.TuitionFee
}

// TotalCost carries the summed fees for a resolved program. Total is nil when
// the program has no fee rows at all.
type TotalCost struct {
	Found       bool
	ProgramName string
	Total       *float64
}

// Scholarships lists open scholarships.
type Scholarships struct {
	Items []models.Scholarship
}

// FinancialAid lists financial aid options.
type FinancialAid struct {
	Items []models.FinancialAid
}

// Facilities lists campus facilities.
type Facilities struct {
	Items []models.CampusFacility
}

// Accommodation lists hostel options.
type Accommodation struct {
	Items []models.Accommodation
}

// StudentClubs lists student clubs.
type StudentClubs struct {
	Items []models.StudentClub
}

// Events lists upcoming campus events.
type Events struct {
	Items []models.Event
}

// FAQAnswer carries the FAQ matches for a keyword. The first match is the
// answer shown; the rest surface as related questions.
type FAQAnswer struct {
	Matches []models.FAQ
}

func (Fallback) isResult()              {}
func (Welcome) isResult()               {}
func (ProgramList) isResult()           {}
func (ProgramDetails) isResult()        {}
func (ProgramComparison) isResult()     {}
func (FacultyMembers) isResult()        {}
func (AdmissionRequirements) isResult() {}
func (ImportantDates) isResult()        {}
func (ApplicationProcedure) isResult()  {}
func (DocumentChecklist) isResult()     {}
func (ApplicationStatus) isResult()     {}
func (TuitionFees) isResult()           {}
func (TotalCost) isResult()             {}
func (Scholarships) isResult()          {}
func (FinancialAid) isResult()          {}
func (Facilities) isResult()            {}
func (Accommodation) isResult()         {}
func (StudentClubs) isResult()          {}
func (Events) isResult()                {}
func (FAQAnswer) isResult()             {}

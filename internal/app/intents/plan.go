package intents

import (
	"context"

	"github.com/aiman/admitbot/internal/app/models"
	"github.com/aiman/admitbot/internal/app/repositories"
	"github.com/aiman/admitbot/internal/app/reply"
)

// subjectDisplayLimit caps the subjects shown on a program detail card.
const subjectDisplayLimit = 5

// QueryPlan is the unit of logic behind one intent. A plan resolves every
// expected outcome (success, empty, not-found, bad input) into a reply.Result;
// only store and system failures travel back as errors.
type QueryPlan interface {
	Execute(ctx context.Context, params Params) (reply.Result, error)
}

// PlanFunc adapts a function to the QueryPlan interface.
type PlanFunc func(ctx context.Context, params Params) (reply.Result, error)

// Execute implements QueryPlan
func (f PlanFunc) Execute(ctx context.Context, params Params) (reply.Result, error) {
	return f(ctx, params)
}

// ProgramStore is the program access the plans need.
type ProgramStore interface {
	Resolve(ctx context.Context, identifier string) (*models.Program, error)
	Search(ctx context.Context, filter repositories.ProgramFilter) ([]models.Program, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.Program, error)
	ListSubjects(ctx context.Context, programID int64, limit uint64) ([]models.Subject, error)
}

// FacultyStore is the faculty access the plans need.
type FacultyStore interface {
	GetFacultyName(ctx context.Context, id int64) (string, error)
	ListMembers(ctx context.Context, facultyName string) ([]models.FacultyMember, error)
}

// AdmissionStore is the admission-data access the plans need.
type AdmissionStore interface {
	ListRequirements(ctx context.Context, programID int64) ([]models.AdmissionRequirement, error)
	ListChecklist(ctx context.Context, programID int64) ([]models.ChecklistItem, error)
	ListImportantDates(ctx context.Context, programID int64) ([]models.ImportantDate, error)
	GetApplication(ctx context.Context, referenceNumber string) (*models.Application, error)
}

// FinanceStore is the fee and funding access the plans need.
type FinanceStore interface {
	ListTuitionFees(ctx context.Context, programID int64) ([]models.TuitionFee, error)
	TotalsByCurrency(ctx context.Context, programID int64) ([]models.FeeTotal, error)
	TotalCost(ctx context.Context, programID int64) (*float64, error)
	ListScholarships(ctx context.Context) ([]models.Scholarship, error)
	ListFinancialAid(ctx context.Context, aidType string) ([]models.FinancialAid, error)
}

// CampusStore is the campus catalog access the plans need.
type CampusStore interface {
	ListFacilities(ctx context.Context) ([]models.CampusFacility, error)
	ListAccommodation(ctx context.Context) ([]models.Accommodation, error)
	ListClubs(ctx context.Context, category string) ([]models.StudentClub, error)
	ListUpcomingEvents(ctx context.Context) ([]models.Event, error)
}

// FAQStore is the FAQ access the plans need.
type FAQStore interface {
	Search(ctx context.Context, keyword string) ([]models.FAQ, error)
}

// Stores bundles the store interfaces a router needs to build its plans.
type Stores struct {
	Programs   ProgramStore
	Faculties  FacultyStore
	Admissions AdmissionStore
	Finance    FinanceStore
	Campus     CampusStore
	FAQs       FAQStore
}

// NewStores adapts the concrete repositories to the plan store interfaces.
func NewStores(repos *repositories.Repositories) Stores {
	return Stores{
		Programs:   repos.ProgramRepository,
		Faculties:  repos.FacultyRepository,
		Admissions: repos.AdmissionRepository,
		Finance:    repos.FinanceRepository,
		Campus:     repos.CampusRepository,
		FAQs:       repos.FAQRepository,
	}
}

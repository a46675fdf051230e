package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiman/admitbot/internal/pkg/apperrors"
)

// ErrNotFound is the shared sentinel for lookups that matched no rows.
var ErrNotFound = apperrors.ErrResourceNotFound

// Repositories holds all the repository instances
type Repositories struct {
	ProgramRepository   *ProgramRepository
	FacultyRepository   *FacultyRepository
	AdmissionRepository *AdmissionRepository
	FinanceRepository   *FinanceRepository
	CampusRepository    *CampusRepository
	FAQRepository       *FAQRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProgramRepository:   NewProgramRepository(db),
		FacultyRepository:   NewFacultyRepository(db),
		AdmissionRepository: NewAdmissionRepository(db),
		FinanceRepository:   NewFinanceRepository(db),
		CampusRepository:    NewCampusRepository(db),
		FAQRepository:       NewFAQRepository(db),
	}
}

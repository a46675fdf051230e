package intents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiman/admitbot/internal/app/models"
	"github.com/aiman/admitbot/internal/app/repositories"
	"github.com/aiman/admitbot/internal/app/reply"
)

// Store fakes built from function fields; tests set only what a plan touches.

type fakeProgramStore struct {
	resolve      func(identifier string) (*models.Program, error)
	search       func(filter repositories.ProgramFilter) ([]models.Program, error)
	getByIDs     func(ids []int64) ([]models.Program, error)
	listSubjects func(programID int64, limit uint64) ([]models.Subject, error)
}

func (f *fakeProgramStore) Resolve(_ context.Context, identifier string) (*models.Program, error) {
	return f.resolve(identifier)
}

func (f *fakeProgramStore) Search(_ context.Context, filter repositories.ProgramFilter) ([]models.Program, error) {
	return f.search(filter)
}

func (f *fakeProgramStore) GetByIDs(_ context.Context, ids []int64) ([]models.Program, error) {
	return f.getByIDs(ids)
}

func (f *fakeProgramStore) ListSubjects(_ context.Context, programID int64, limit uint64) ([]models.Subject, error) {
	return f.listSubjects(programID, limit)
}

type fakeFacultyStore struct {
	getFacultyName func(id int64) (string, error)
	listMembers    func(facultyName string) ([]models.FacultyMember, error)
}

func (f *fakeFacultyStore) GetFacultyName(_ context.Context, id int64) (string, error) {
	return f.getFacultyName(id)
}

func (f *fakeFacultyStore) ListMembers(_ context.Context, facultyName string) ([]models.FacultyMember, error) {
	return f.listMembers(facultyName)
}

type fakeAdmissionStore struct {
	listRequirements   func(programID int64) ([]models.AdmissionRequirement, error)
	listChecklist      func(programID int64) ([]models.ChecklistItem, error)
	listImportantDates func(programID int64) ([]models.ImportantDate, error)
	getApplication     func(reference string) (*models.Application, error)
}

func (f *fakeAdmissionStore) ListRequirements(_ context.Context, programID int64) ([]models.AdmissionRequirement, error) {
	return f.listRequirements(programID)
}

func (f *fakeAdmissionStore) ListChecklist(_ context.Context, programID int64) ([]models.ChecklistItem, error) {
	return f.listChecklist(programID)
}

func (f *fakeAdmissionStore) ListImportantDates(_ context.Context, programID int64) ([]models.ImportantDate, error) {
	return f.listImportantDates(programID)
}

func (f *fakeAdmissionStore) GetApplication(_ context.Context, reference string) (*models.Application, error) {
	return f.getApplication(reference)
}

type fakeFinanceStore struct {
	listTuitionFees  func(programID int64) ([]models.TuitionFee, error)
	totalsByCurrency func(programID int64) ([]models.FeeTotal, error)
	totalCost        func(programID int64) (*float64, error)
	listScholarships func() ([]models.Scholarship, error)
	listFinancialAid func(aidType string) ([]models.FinancialAid, error)
}

func (f *fakeFinanceStore) ListTuitionFees(_ context.Context, programID int64) ([]models.TuitionFee, error) {
	return f.listTuitionFees(programID)
}

func (f *fakeFinanceStore) TotalsByCurrency(_ context.Context, programID int64) ([]models.FeeTotal, error) {
	return f.totalsByCurrency(programID)
}

func (f *fakeFinanceStore) TotalCost(_ context.Context, programID int64) (*float64, error) {
	return f.totalCost(programID)
}

func (f *fakeFinanceStore) ListScholarships(_ context.Context) ([]models.Scholarship, error) {
	return f.listScholarships()
}

func (f *fakeFinanceStore) ListFinancialAid(_ context.Context, aidType string) ([]models.FinancialAid, error) {
	return f.listFinancialAid(aidType)
}

type fakeFAQStore struct {
	search func(keyword string) ([]models.FAQ, error)
}

func (f *fakeFAQStore) Search(_ context.Context, keyword string) ([]models.FAQ, error) {
	return f.search(keyword)
}

func sampleProgram() *models.Program {
	description := "A broad computing degree."
	career := "Software engineer, data analyst."
	return &models.Program{
		ID:              25,
		Name:            "Bachelor of Computer Science",
		Level:           "Bachelor",
		DurationYears:   3,
		FacultyID:       2,
		Description:     &description,
		CareerProspects: &career,
	}
}

func TestSearchProgramsBuildsConjunctiveFilter(t *testing.T) {
	var captured repositories.ProgramFilter
	plan := &searchProgramsPlan{programs: &fakeProgramStore{
		search: func(filter repositories.ProgramFilter) ([]models.Program, error) {
			captured = filter
			return []models.Program{{ID: 1, Name: "Bachelor of Computer Science"}}, nil
		},
	}}

	result, err := plan.Execute(context.Background(), Params{
		"faculty":     "Engineering",
		"programName": "Computer",
		"level":       "Bachelor",
	})
	require.NoError(t, err)

	assert.Equal(t, repositories.ProgramFilter{
		Faculty:     "Engineering",
		ProgramName: "Computer",
		Level:       "Bachelor",
	}, captured)

	list, ok := result.(reply.ProgramList)
	require.True(t, ok)
	assert.Len(t, list.Programs, 1)
}

func TestProgramDetailsNotFoundEchoesQuery(t *testing.T) {
	plan := &programDetailsPlan{
		programs: &fakeProgramStore{
			resolve: func(identifier string) (*models.Program, error) {
				return nil, repositories.ErrNotFound
			},
		},
		faculties: &fakeFacultyStore{},
	}

	result, err := plan.Execute(context.Background(), Params{"programId": "Underwater Basket Weaving"})
	require.NoError(t, err)

	details, ok := result.(reply.ProgramDetails)
	require.True(t, ok)
	assert.False(t, details.Found)
	assert.Equal(t, "Underwater Basket Weaving", details.Query)
}

func TestProgramDetailsComposesDependentFetches(t *testing.T) {
	plan := &programDetailsPlan{
		programs: &fakeProgramStore{
			resolve: func(identifier string) (*models.Program, error) {
				assert.Equal(t, "25", identifier)
				return sampleProgram(), nil
			},
			listSubjects: func(programID int64, limit uint64) ([]models.Subject, error) {
				assert.Equal(t, int64(25), programID)
				assert.Equal(t, uint64(5), limit)
				return []models.Subject{{Name: "Data Structures", CreditHours: 4}}, nil
			},
		},
		faculties: &fakeFacultyStore{
			getFacultyName: func(id int64) (string, error) {
				assert.Equal(t, int64(2), id)
				return "Faculty of Information Technology", nil
			},
		},
	}

	result, err := plan.Execute(context.Background(), Params{"programId": float64(25)})
	require.NoError(t, err)

	details, ok := result.(reply.ProgramDetails)
	require.True(t, ok)
	assert.True(t, details.Found)
	assert.Equal(t, "Faculty of Information Technology", details.FacultyName)
	assert.Len(t, details.Subjects, 1)
}

func TestProgramDetailsDegradesOnDependentFetchFailure(t *testing.T) {
	plan := &programDetailsPlan{
		programs: &fakeProgramStore{
			resolve: func(identifier string) (*models.Program, error) {
				return sampleProgram(), nil
			},
			listSubjects: func(programID int64, limit uint64) ([]models.Subject, error) {
				return nil, errors.New("subjects table unavailable")
			},
		},
		faculties: &fakeFacultyStore{
			getFacultyName: func(id int64) (string, error) {
				return "", repositories.ErrNotFound
			},
		},
	}

	result, err := plan.Execute(context.Background(), Params{"programId": "25"})
	require.NoError(t, err)

	details, ok := result.(reply.ProgramDetails)
	require.True(t, ok)
	assert.True(t, details.Found)
	assert.Empty(t, details.FacultyName)
	assert.Empty(t, details.Subjects)
}

func TestCompareProgramsRequiresTwoIDsWithoutStoreAccess(t *testing.T) {
	storeQueried := false
	plan := &compareProgramsPlan{
		programs: &fakeProgramStore{
			getByIDs: func(ids []int64) ([]models.Program, error) {
				storeQueried = true
				return nil, nil
			},
		},
		finance: &fakeFinanceStore{},
	}

	for _, params := range []Params{
		{},
		{"programIds": "7"},
		{"programIds": []any{"abc", "-1"}},
		{"programId1": "3"},
	} {
		result, err := plan.Execute(context.Background(), params)
		require.NoError(t, err)

		comparison, ok := result.(reply.ProgramComparison)
		require.True(t, ok)
		assert.True(t, comparison.TooFewIDs)
	}

	assert.False(t, storeQueried, "fewer than two IDs must never reach the store")
}

func TestCompareProgramsReportsMissingProgram(t *testing.T) {
	plan := &compareProgramsPlan{
		programs: &fakeProgramStore{
			getByIDs: func(ids []int64) ([]models.Program, error) {
				return []models.Program{{ID: 1, Name: "Bachelor of Arts"}}, nil
			},
		},
		finance: &fakeFinanceStore{},
	}

	result, err := plan.Execute(context.Background(), Params{"programIds": []any{float64(1), float64(999)}})
	require.NoError(t, err)

	comparison, ok := result.(reply.ProgramComparison)
	require.True(t, ok)
	assert.True(t, comparison.Missing)
}

func TestCompareProgramsPairsFeeTotals(t *testing.T) {
	plan := &compareProgramsPlan{
		programs: &fakeProgramStore{
			getByIDs: func(ids []int64) ([]models.Program, error) {
				return []models.Program{
					{ID: 1, Name: "Bachelor of Arts", FacultyName: "Arts", Level: "Bachelor", DurationYears: 3},
					{ID: 2, Name: "Bachelor of Science", FacultyName: "Science", Level: "Bachelor", DurationYears: 4},
				}, nil
			},
		},
		finance: &fakeFinanceStore{
			totalsByCurrency: func(programID int64) ([]models.FeeTotal, error) {
				if programID == 1 {
					return []models.FeeTotal{{Total: 45000, Currency: "RM"}}, nil
				}
				return nil, nil // no fee rows configured
			},
		},
	}

	result, err := plan.Execute(context.Background(), Params{"programId1": "1", "programId2": "2"})
	require.NoError(t, err)

	comparison, ok := result.(reply.ProgramComparison)
	require.True(t, ok)
	require.NotNil(t, comparison.Left.Total)
	assert.Equal(t, float64(45000), comparison.Left.Total.Total)
	assert.Nil(t, comparison.Right.Total)
}

func TestTotalCostKeepsNilSumDistinct(t *testing.T) {
	plan := &totalCostPlan{
		programs: &fakeProgramStore{
			resolve: func(identifier string) (*models.Program, error) {
				return sampleProgram(), nil
			},
		},
		finance: &fakeFinanceStore{
			totalCost: func(programID int64) (*float64, error) {
				return nil, nil // SUM over zero rows is NULL
			},
		},
	}

	result, err := plan.Execute(context.Background(), Params{"programId": "25"})
	require.NoError(t, err)

	cost, ok := result.(reply.TotalCost)
	require.True(t, ok)
	assert.True(t, cost.Found)
	assert.Nil(t, cost.Total)
}

func TestImportantDatesGenericWithoutIdentifier(t *testing.T) {
	resolved := false
	plan := &importantDatesPlan{
		programs: &fakeProgramStore{
			resolve: func(identifier string) (*models.Program, error) {
				resolved = true
				return nil, repositories.ErrNotFound
			},
		},
		admissions: &fakeAdmissionStore{},
	}

	result, err := plan.Execute(context.Background(), Params{})
	require.NoError(t, err)

	dates, ok := result.(reply.ImportantDates)
	require.True(t, ok)
	assert.True(t, dates.Generic)
	assert.False(t, resolved, "generic dates need no store access")
}

func TestImportantDatesSplitsTrimesterRows(t *testing.T) {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	plan := &importantDatesPlan{
		programs: &fakeProgramStore{
			resolve: func(identifier string) (*models.Program, error) {
				return sampleProgram(), nil
			},
		},
		admissions: &fakeAdmissionStore{
			listImportantDates: func(programID int64) ([]models.ImportantDate, error) {
				return []models.ImportantDate{
					{EventType: "Trimester 1 Start", StartDate: &start},
					{EventType: "Application Deadline", StartDate: &start},
					{EventType: "Trimester 1 End"},
				}, nil
			},
		},
	}

	result, err := plan.Execute(context.Background(), Params{"programId": "25"})
	require.NoError(t, err)

	dates, ok := result.(reply.ImportantDates)
	require.True(t, ok)
	assert.Len(t, dates.Trimester, 2)
	assert.Len(t, dates.Other, 1)
	assert.Equal(t, "Application Deadline", dates.Other[0].EventType)
}

func TestApplicationStatusNotFound(t *testing.T) {
	plan := &applicationStatusPlan{admissions: &fakeAdmissionStore{
		getApplication: func(reference string) (*models.Application, error) {
			assert.Equal(t, "UA-2026-001", reference)
			return nil, repositories.ErrNotFound
		},
	}}

	result, err := plan.Execute(context.Background(), Params{"referenceNumber": "UA-2026-001"})
	require.NoError(t, err)

	status, ok := result.(reply.ApplicationStatus)
	require.True(t, ok)
	assert.False(t, status.Found)
}

func TestSearchFAQPassesKeyword(t *testing.T) {
	plan := &searchFAQPlan{faqs: &fakeFAQStore{
		search: func(keyword string) ([]models.FAQ, error) {
			assert.Equal(t, "hostel", keyword)
			return []models.FAQ{{Question: "Is hostel available?", Answer: "Yes."}}, nil
		},
	}}

	result, err := plan.Execute(context.Background(), Params{"keyword": "hostel"})
	require.NoError(t, err)

	answer, ok := result.(reply.FAQAnswer)
	require.True(t, ok)
	assert.Len(t, answer.Matches, 1)
}

func TestPlanPropagatesStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	plan := &searchProgramsPlan{programs: &fakeProgramStore{
		search: func(filter repositories.ProgramFilter) ([]models.Program, error) {
			return nil, storeErr
		},
	}}

	_, err := plan.Execute(context.Background(), Params{})
	assert.ErrorIs(t, err, storeErr)
}

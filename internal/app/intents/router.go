package intents

import (
	"context"

	"github.com/aiman/admitbot/internal/app/reply"
)

// Router maps intent display names to query plans. The mapping is built once
// at wiring time and read concurrently afterwards; no plan depends on another.
type Router struct {
	plans    map[string]QueryPlan
	fallback QueryPlan
}

// NewRouter builds the static intent table over the given stores.
func NewRouter(stores Stores) *Router {
	plans := map[string]QueryPlan{
		// Academic programs
		"SearchPrograms":    &searchProgramsPlan{programs: stores.Programs},
		"GetProgramDetails": &programDetailsPlan{programs: stores.Programs, faculties: stores.Faculties},
		"ComparePrograms":   &compareProgramsPlan{programs: stores.Programs, finance: stores.Finance},
		"GetFacultyMembers": &facultyMembersPlan{faculties: stores.Faculties},

		// Admission
		"GetAdmissionRequirements": &admissionRequirementsPlan{programs: stores.Programs, admissions: stores.Admissions},
		"GetImportantDates":        &importantDatesPlan{programs: stores.Programs, admissions: stores.Admissions},
		"GetApplicationProcedure":  &applicationProcedurePlan{},
		"GetDocumentChecklist":     &documentChecklistPlan{programs: stores.Programs, admissions: stores.Admissions},
		"CheckApplicationStatus":   &applicationStatusPlan{admissions: stores.Admissions},

		// Fees and funding
		"GetTuitionFees":     &tuitionFeesPlan{programs: stores.Programs, finance: stores.Finance},
		"CalculateTotalCost": &totalCostPlan{programs: stores.Programs, finance: stores.Finance},
		"SearchScholarships": &scholarshipsPlan{finance: stores.Finance},
		"GetFinancialAid":    &financialAidPlan{finance: stores.Finance},

		// Campus life
		"GetCampusFacilities": &campusFacilitiesPlan{campus: stores.Campus},
		"GetAccommodation":    &accommodationPlan{campus: stores.Campus},
		"GetStudentClubs":     &studentClubsPlan{campus: stores.Campus},
		"GetUpcomingEvents":   &upcomingEventsPlan{campus: stores.Campus},
		"SearchFAQ":           &searchFAQPlan{faqs: stores.FAQs},

		"Default Welcome Intent": PlanFunc(func(ctx context.Context, params Params) (reply.Result, error) {
			return reply.Welcome{}, nil
		}),
	}

	return &Router{
		plans: plans,
		fallback: PlanFunc(func(ctx context.Context, params Params) (reply.Result, error) {
			return reply.Fallback{}, nil
		}),
	}
}

// Route returns the plan for an intent name, or the fallback plan when the
// intent is not in the table.
func (r *Router) Route(intentName string) QueryPlan {
	if plan, ok := r.plans[intentName]; ok {
		return plan
	}
	return r.fallback
}

// Supports reports whether an intent name is in the table.
func (r *Router) Supports(intentName string) bool {
	_, ok := r.plans[intentName]
	return ok
}

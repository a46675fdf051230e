package intents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiman/admitbot/internal/app/reply"
)

func TestRouterKnowsEverySupportedIntent(t *testing.T) {
	router := NewRouter(Stores{})

	supported := []string{
		"SearchPrograms",
		"GetProgramDetails",
		"ComparePrograms",
		"GetFacultyMembers",
		"GetAdmissionRequirements",
		"GetImportantDates",
		"GetApplicationProcedure",
		"GetDocumentChecklist",
		"CheckApplicationStatus",
		"GetTuitionFees",
		"CalculateTotalCost",
		"SearchScholarships",
		"GetFinancialAid",
		"GetCampusFacilities",
		"GetAccommodation",
		"GetStudentClubs",
		"GetUpcomingEvents",
		"SearchFAQ",
		"Default Welcome Intent",
	}

	for _, intent := range supported {
		assert.True(t, router.Supports(intent), "expected router to support %q", intent)
	}
}

func TestRouterFallsBackOnUnknownIntent(t *testing.T) {
	router := NewRouter(Stores{})

	plan := router.Route("OrderPizza")
	require.NotNil(t, plan)

	result, err := plan.Execute(context.Background(), Params{})
	require.NoError(t, err)
	assert.IsType(t, reply.Fallback{}, result)
}

func TestRouterWelcomeIntent(t *testing.T) {
	router := NewRouter(Stores{})

	result, err := router.Route("Default Welcome Intent").Execute(context.Background(), Params{})
	require.NoError(t, err)
	assert.IsType(t, reply.Welcome{}, result)
}

func TestRouterStaticProcedureIntent(t *testing.T) {
	router := NewRouter(Stores{})

	result, err := router.Route("GetApplicationProcedure").Execute(context.Background(), Params{})
	require.NoError(t, err)
	assert.IsType(t, reply.ApplicationProcedure{}, result)
}

package reply

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aiman/admitbot/internal/app/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(v float64) *float64 { return &v }

func TestFormatNumberDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "3", formatNumber(3.0))
	assert.Equal(t, "3.5", formatNumber(3.5))
	assert.Equal(t, "0", formatNumber(0))
}

func TestFormatMoneyGroupsThousands(t *testing.T) {
	assert.Equal(t, "45,000.00", formatMoney(45000))
	assert.Equal(t, "1,234,567.89", formatMoney(1234567.89))
	assert.Equal(t, "999.50", formatMoney(999.5))
	assert.Equal(t, "-1,000.00", formatMoney(-1000))
}

func TestFormatShortDate(t *testing.T) {
	d := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "5/1/2026", formatShortDate(&d))
	assert.Equal(t, "TBA", formatShortDate(nil))
}

func TestFormatProgramListEmpty(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, "🚫 No programs found matching your criteria.", f.Format(ProgramList{}))
}

func TestFormatProgramListNumbersRowsInOrder(t *testing.T) {
	f := NewFormatter()
	text := f.Format(ProgramList{Programs: []models.Program{
		{Name: "Bachelor of Computer Science"},
		{Name: "Bachelor of Business Administration"},
	}})

	assert.Contains(t, text, "1. Bachelor of Computer Science")
	assert.Contains(t, text, "2. Bachelor of Business Administration")
	assert.Less(t, strings.Index(text, "Computer"), strings.Index(text, "Business"))
}

func TestFormatProgramDetailsNotFoundEchoesQuery(t *testing.T) {
	f := NewFormatter()
	text := f.Format(ProgramDetails{Found: false, Query: "Astrogation"})

	assert.Contains(t, text, "\"**Astrogation**\"")
	assert.Contains(t, text, "check the spelling")
}

func TestFormatProgramDetailsFillsPlaceholders(t *testing.T) {
	f := NewFormatter()
	text := f.Format(ProgramDetails{
		Found: true,
		Program: models.Program{
			Name:          "Bachelor of Computer Science",
			Level:         "Bachelor",
			DurationYears: 3,
		},
	})

	assert.Contains(t, text, "**Duration:** 3 Years")
	assert.Contains(t, text, "   • No subjects listed yet.")
	assert.Contains(t, text, "**Faculty:** Not available")
	assert.Contains(t, text, "Not available.")
}

func TestFormatProgramDetailsListsSubjectsWithCredits(t *testing.T) {
	f := NewFormatter()
	text := f.Format(ProgramDetails{
		Found:       true,
		Program:     models.Program{Name: "BCS", DurationYears: 3.5, Description: strPtr("Computing degree.")},
		FacultyName: "Faculty of IT",
		Subjects:    []models.Subject{{Name: "Data Structures", CreditHours: 4}},
	})

	assert.Contains(t, text, "**Duration:** 3.5 Years")
	assert.Contains(t, text, "   • Data Structures (4 Cr)")
	assert.Contains(t, text, "**Faculty:** Faculty of IT")
	assert.Contains(t, text, "Computing degree.")
}

func TestFormatComparisonInputErrors(t *testing.T) {
	f := NewFormatter()

	assert.Contains(t, f.Format(ProgramComparison{TooFewIDs: true}), "Please provide 2 program IDs")
	assert.Contains(t, f.Format(ProgramComparison{Missing: true}), "check the program IDs")
}

func TestFormatComparisonShowsNAForMissingFees(t *testing.T) {
	f := NewFormatter()
	text := f.Format(ProgramComparison{
		Left: ComparisonEntry{
			Program: models.Program{Name: "BCS", FacultyName: "IT", Level: "Bachelor", DurationYears: 3},
			Total:   &models.FeeTotal{Total: 45000, Currency: "RM"},
		},
		Right: ComparisonEntry{
			Program: models.Program{Name: "BBA", FacultyName: "Business", Level: "Bachelor", DurationYears: 3},
		},
	})

	assert.Contains(t, text, "Total Fees: RM 45,000.00")
	assert.Contains(t, text, "Total Fees: N/A")
}

func TestFormatRequirementsEmptyFallsBackToStandard(t *testing.T) {
	f := NewFormatter()
	text := f.Format(AdmissionRequirements{Found: true, ProgramName: "BCS"})
	assert.Equal(t, "ℹ️ Standard university requirements apply.", text)
}

func TestFormatImportantDatesGeneric(t *testing.T) {
	f := NewFormatter()
	text := f.Format(ImportantDates{Generic: true})

	assert.Contains(t, text, "January Intake")
	assert.Contains(t, text, "October Intake")
	assert.Contains(t, text, "important dates for program [ID]")
}

func TestFormatImportantDatesSections(t *testing.T) {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	f := NewFormatter()
	text := f.Format(ImportantDates{
		Found:       true,
		ProgramName: "BCS",
		Trimester: []models.ImportantDate{
			{EventType: "Trimester 1 Start", StartDate: &start},
			{EventType: "Trimester 1 End"},
		},
		Other: []models.ImportantDate{
			{EventType: "Application Deadline", StartDate: &start},
		},
	})

	assert.Contains(t, text, "🎓 ACADEMIC CALENDAR:")
	assert.Contains(t, text, "▶️: 5/1/2026")
	assert.Contains(t, text, "⏹️: TBA")
	assert.Contains(t, text, "🗓️ KEY DATES:")
	assert.Contains(t, text, "• Application Deadline: 5/1/2026")
}

// Per-semester amounts print plainly; only the comparison totals use grouped
// money formatting.
func TestFormatTuitionFeesRendersPlainAmounts(t *testing.T) {
	f := NewFormatter()
	text := f.Format(TuitionFees{
		Found:       true,
		ProgramName: "BCS",
		Fees: []models.TuitionFee{
			{Semester: 1, Amount: 7500, Currency: "RM"},
			{Semester: 2, Amount: 7500.5},
		},
	})

	assert.Contains(t, text, "- Sem 1: RM 7500\n")
	assert.Contains(t, text, "- Sem 2: RM 7500.5\n")
	assert.NotContains(t, text, "7,500")
}

func TestFormatTotalCostUnknownForNilSum(t *testing.T) {
	f := NewFormatter()
	text := f.Format(TotalCost{Found: true, ProgramName: "BCS"})

	assert.Contains(t, text, "RM Unknown")
	assert.NotContains(t, text, "RM 0")
}

func TestFormatTotalCostRendersSum(t *testing.T) {
	f := NewFormatter()
	text := f.Format(TotalCost{Found: true, ProgramName: "BCS", Total: floatPtr(45000)})
	assert.Contains(t, text, "RM 45000")
}

func TestFormatApplicationStatus(t *testing.T) {
	f := NewFormatter()

	assert.Contains(t, f.Format(ApplicationStatus{}), "Check your reference number")

	text := f.Format(ApplicationStatus{Found: true, Application: models.Application{Status: "Under Review"}})
	assert.Contains(t, text, "**Status:** Under Review")
	assert.Contains(t, text, "**Remarks:** None")
}

func TestFormatFAQRendersFirstAnswerAndRelated(t *testing.T) {
	f := NewFormatter()
	matches := []models.FAQ{
		{Question: "Is hostel available?", Answer: "Yes, on campus."},
		{Question: "How much is the hostel fee?"},
		{Question: "Can I choose my roommate?"},
		{Question: "Related 3"},
		{Question: "Related 4"},
		{Question: "Related 5, over the cap"},
	}
	text := f.Format(FAQAnswer{Matches: matches})

	assert.Contains(t, text, "**Q:** Is hostel available?")
	assert.Contains(t, text, "**A:** Yes, on campus.")
	assert.Contains(t, text, "🔍 **Related questions:**")
	assert.Contains(t, text, "• Related 4")
	assert.NotContains(t, text, "over the cap")
}

func TestFormatFAQNoMatches(t *testing.T) {
	f := NewFormatter()
	assert.Contains(t, f.Format(FAQAnswer{}), "contact support")
}

// Every result shape must render to non-empty text so the webhook never sends
// a blank fulfillment message.
func TestFormatNeverReturnsEmptyText(t *testing.T) {
	f := NewFormatter()
	results := []Result{
		Fallback{},
		Welcome{},
		ProgramList{},
		ProgramDetails{},
		ProgramComparison{},
		FacultyMembers{},
		AdmissionRequirements{},
		ImportantDates{},
		ApplicationProcedure{},
		DocumentChecklist{},
		ApplicationStatus{},
		TuitionFees{},
		TotalCost{},
		Scholarships{},
		FinancialAid{},
		Facilities{},
		Accommodation{},
		StudentClubs{},
		Events{},
		FAQAnswer{},
	}

	for _, result := range results {
		assert.NotEmpty(t, f.Format(result))
	}
}

func TestApologyWording(t *testing.T) {
	assert.Equal(t, "⚠️ System error. Please try again later.", Apology())
}

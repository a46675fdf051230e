package reply

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Canned texts shared by several results.
const (
	fallbackText       = "I'm not sure how to help with that."
	apologyText        = "⚠️ System error. Please try again later."
	programNotFound    = "❌ Program not found."
	intakePeriodsBlock = "🗓️ Intake Periods:\n   • January Intake\n   • May Intake\n   • October Intake"
)

// relatedQuestionLimit caps how many follow-up FAQ questions are listed under
// the rendered answer.
const relatedQuestionLimit = 4

// Apology returns the generic message used when the dispatch sequence fails
// for any reason. It lives here so the webhook boundary and the tests agree
// on the exact wording.
func Apology() string {
	return apologyText
}

// Formatter renders structured results into user-facing text. It holds no
// state and never touches the data store; items are rendered in the order the
// query returned them.
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders a result into a single text block. Every result shape
// produces a non-empty message.
func (f *Formatter) Format(result Result) string {
	switch r := result.(type) {
	case Fallback:
		return fallbackText
	case Welcome:
		return "👋 Hi! I'm the admissions assistant.\nAsk me about **Programs**, **Admissions**, **Fees**, **Scholarships**, or **Campus Life**!"
	case ProgramList:
		return f.formatProgramList(r)
	case ProgramDetails:
		return f.formatProgramDetails(r)
	case ProgramComparison:
		return f.formatComparison(r)
	case FacultyMembers:
		return f.formatFacultyMembers(r)
	case AdmissionRequirements:
		return f.formatRequirements(r)
	case ImportantDates:
		return f.formatImportantDates(r)
	case ApplicationProcedure:
		return "🚀 **How to Apply:**\n1️⃣ Browse our programs and verify entry requirements.\n2️⃣ Gather documents.\n3️⃣ Fill out the form at admission page.\n4️⃣ Receive your offer and pay the registration fee.\n"
	case DocumentChecklist:
		return f.formatChecklist(r)
	case ApplicationStatus:
		return f.formatApplicationStatus(r)
	case TuitionFees:
		return f.formatTuitionFees(r)
	case TotalCost:
		return f.formatTotalCost(r)
	case Scholarships:
		return f.formatScholarships(r)
	case FinancialAid:
		return f.formatFinancialAid(r)
	case Facilities:
		return f.formatFacilities(r)
	case Accommodation:
		return f.formatAccommodation(r)
	case StudentClubs:
		return f.formatClubs(r)
	case Events:
		return f.formatEvents(r)
	case FAQAnswer:
		return f.formatFAQ(r)
	default:
		return fallbackText
	}
}

func (f *Formatter) formatProgramList(r ProgramList) string {
	if len(r.Programs) == 0 {
		return "🚫 No programs found matching your criteria."
	}

	var b strings.Builder
	b.WriteString("🎓 **Found Programs:**\n\n")
	for i, p := range r.Programs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
	}
	return b.String()
}

func (f *Formatter) formatProgramDetails(r ProgramDetails) string {
	if !r.Found {
		return fmt.Sprintf("❌ I couldn't find a program matching \"**%s**\".\nPlease check the spelling or try a keyword.", r.Query)
	}

	subjectList := "   • No subjects listed yet."
	if len(r.Subjects) > 0 {
		lines := make([]string, 0, len(r.Subjects))
		for _, s := range r.Subjects {
			lines = append(lines, fmt.Sprintf("   • %s (%d Cr)", s.Name, s.CreditHours))
		}
		subjectList = strings.Join(lines, "\n")
	}

	faculty := r.FacultyName
	if faculty == "" {
		faculty = "Not available"
	}

	return fmt.Sprintf("📘 **%s**\n"+
		"────────────────────\n"+
		"🏢 **Faculty:** %s\n"+
		"⏳ **Duration:** %s Years\n"+
		"🎓 **Level:** %s\n\n"+
		"📝 **Description**\n%s\n\n"+
		"📚 **Key Subjects**\n%s\n\n"+
		"💼 **Career Prospects**\n%s\n\n"+
		"_Want to apply? Ask \"How do I apply for program [id]?\"_",
		r.Program.Name,
		faculty,
		formatNumber(r.Program.DurationYears),
		r.Program.Level,
		orPlaceholder(r.Program.Description, "Not available."),
		subjectList,
		orPlaceholder(r.Program.CareerProspects, "Not available."),
	)
}

func (f *Formatter) formatComparison(r ProgramComparison) string {
	if r.TooFewIDs {
		return "⚠️ Please provide 2 program IDs to compare.\n\nExample: \"Compare program 1 and 2\""
	}
	if r.Missing {
		return "⚠️ I couldn't find one or both of those programs. Please check the program IDs.\n\nTry asking: \"What programs do you offer?\" to see available programs."
	}

	return fmt.Sprintf("⚖️ Program Comparison:\n\n"+
		"1️⃣ %s\n2️⃣ %s\n", comparisonEntry(r.Left), comparisonEntry(r.Right))
}

func comparisonEntry(e ComparisonEntry) string {
	total := "N/A"
	if e.Total != nil {
		currency := e.Total.Currency
		if currency == "" {
			currency = "RM"
		}
		total = fmt.Sprintf("%s %s", currency, formatMoney(e.Total.Total))
	}

	return fmt.Sprintf("%s\n"+
		"   Faculty: %s\n"+
		"   Level: %s\n"+
		"   Duration: %s years\n"+
		"   Total Fees: %s\n",
		e.Program.Name, e.Program.FacultyName, e.Program.Level,
		formatNumber(e.Program.DurationYears), total)
}

func (f *Formatter) formatFacultyMembers(r FacultyMembers) string {
	if len(r.Members) == 0 {
		return "🚫 No faculty members found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👨‍🏫 **Faculty Members (%s):**\n\n", r.Faculty)
	for _, m := range r.Members {
		fmt.Fprintf(&b, "👤 **%s**\n   %s - %s\n   📧 %s\n\n", m.Name, m.Designation, m.Specialization, m.Email)
	}
	return b.String()
}

func (f *Formatter) formatRequirements(r AdmissionRequirements) string {
	if !r.Found {
		return fmt.Sprintf("❌ Program \"%s\" not found.", r.Query)
	}
	if len(r.Requirements) == 0 {
		return "ℹ️ Standard university requirements apply."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 **Requirements for %s:**\n\n", r.ProgramName)
	for _, req := range r.Requirements {
		fmt.Fprintf(&b, "✅ **%s**: %s\n   %s\n\n",
			req.QualificationType, req.MinimumGrade, orPlaceholder(req.AdditionalRequirements, ""))
	}
	return b.String()
}

func (f *Formatter) formatImportantDates(r ImportantDates) string {
	if r.Generic {
		return "📅 General Important Dates:\n\n" + intakePeriodsBlock +
			"\n\nFor specific program dates, ask:\n\"What are the important dates for program [ID]?\""
	}
	if !r.Found {
		return "❌ Program not found. Please check the program ID."
	}
	if len(r.Trimester) == 0 && len(r.Other) == 0 {
		return fmt.Sprintf("📅 Important Dates for %s:\n\n🗓️ General intake periods:\n"+
			"   • January Intake\n   • May Intake\n   • October Intake\n\n"+
			"Specific dates to be announced.", r.ProgramName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Important Dates for %s:\n\n", r.ProgramName)

	if len(r.Trimester) > 0 {
		b.WriteString("🎓 ACADEMIC CALENDAR:\n")
		for _, d := range r.Trimester {
			marker := "⏹️"
			if strings.Contains(d.EventType, "Start") {
				marker = "▶️"
			}
			fmt.Fprintf(&b, "   %s: %s\n", marker, formatShortDate(d.StartDate))
			if d.Description != nil && *d.Description != "" {
				fmt.Fprintf(&b, "     %s\n", *d.Description)
			}
		}
	}

	if len(r.Other) > 0 {
		if len(r.Trimester) > 0 {
			b.WriteString("\n")
		}
		b.WriteString("🗓️ KEY DATES:\n")
		for _, d := range r.Other {
			fmt.Fprintf(&b, "   • %s: %s\n", d.EventType, formatShortDate(d.StartDate))
			if d.Description != nil && *d.Description != "" {
				fmt.Fprintf(&b, "     %s\n", *d.Description)
			}
		}
	}

	return b.String()
}

func (f *Formatter) formatChecklist(r DocumentChecklist) string {
	if !r.Found {
		return programNotFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗂️ **Documents for %s:**\n", r.ProgramName)
	if len(r.Items) == 0 {
		b.WriteString("No document checklist configured yet.\n")
		return b.String()
	}
	for _, item := range r.Items {
		marker := "⚪"
		if item.IsMandatory {
			marker = "❗"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, item.DocumentName)
	}
	return b.String()
}

func (f *Formatter) formatApplicationStatus(r ApplicationStatus) string {
	if !r.Found {
		return "⚠️ Application not found. Check your reference number."
	}
	return fmt.Sprintf("🔎 **Status:** %s\n💬 **Remarks:** %s",
		r.Application.Status, orPlaceholder(r.Application.Remarks, "None"))
}

func (f *Formatter) formatTuitionFees(r TuitionFees) string {
	if !r.Found {
		return programNotFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💸 **Fees for %s:**\n", r.ProgramName)
	if len(r.Fees) == 0 {
		b.WriteString("No fee schedule published yet.\n")
		return b.String()
	}
	for _, fee := range r.Fees {
		currency := fee.Currency
		if currency == "" {
			currency = "RM"
		}
		fmt.Fprintf(&b, "- Sem %d: %s %s\n", fee.Semester, currency, formatNumber(fee.Amount))
	}
	return b.String()
}

func (f *Formatter) formatTotalCost(r TotalCost) string {
	if !r.Found {
		return programNotFound
	}

	total := "Unknown"
	if r.Total != nil {
		total = formatNumber(*r.Total)
	}
	return fmt.Sprintf("💰 **Total Tuition (%s):**\nRM %s\n(Excludes living costs)", r.ProgramName, total)
}

func (f *Formatter) formatScholarships(r Scholarships) string {
	if len(r.Items) == 0 {
		return "🚫 No scholarships available at the moment."
	}

	var b strings.Builder
	b.WriteString("🎓 **Available Scholarships:**\n\n")
	for _, s := range r.Items {
		deadline := "TBA"
		if s.Deadline != nil {
			deadline = s.Deadline.Format("2 Jan 2006")
		}
		fmt.Fprintf(&b, "🌟 **%s**\n   Amt: RM %s\n   Deadline: %s\n\n", s.Name, formatNumber(s.Amount), deadline)
	}
	return b.String()
}

func (f *Formatter) formatFinancialAid(r FinancialAid) string {
	if len(r.Items) == 0 {
		return "🚫 No financial aid options found."
	}

	var b strings.Builder
	b.WriteString("🤝 **Financial Aid Options:**\n\n")
	for _, a := range r.Items {
		fmt.Fprintf(&b, "🔹 **%s** (%s)\n   Criteria: %s\n\n", a.Name, a.Type, a.EligibilityCriteria)
	}
	return b.String()
}

func (f *Formatter) formatFacilities(r Facilities) string {
	if len(r.Items) == 0 {
		return "🚫 No campus facilities found."
	}

	var b strings.Builder
	b.WriteString("🏢 **Campus Facilities:**\n\n")
	for _, fac := range r.Items {
		fmt.Fprintf(&b, "🔹 **%s**: %s\n", fac.Name, fac.Description)
	}
	return b.String()
}

func (f *Formatter) formatAccommodation(r Accommodation) string {
	if len(r.Items) == 0 {
		return "🚫 No accommodation options found."
	}

	var b strings.Builder
	b.WriteString("🏠 **Accommodation Options:**\n\n")
	for _, a := range r.Items {
		fmt.Fprintf(&b, "🛏️ **%s** (%s)\n   Fee: RM %s/month\n   Vacancy: %d slots\n\n",
			a.HostelName, a.RoomType, formatNumber(a.MonthlyFee), a.AvailableSlots)
	}
	return b.String()
}

func (f *Formatter) formatClubs(r StudentClubs) string {
	if len(r.Items) == 0 {
		return "🚫 No student clubs found."
	}

	var b strings.Builder
	b.WriteString("🎭 **Student Clubs:**\n")
	for _, c := range r.Items {
		fmt.Fprintf(&b, "• %s (%s)\n", c.Name, c.Category)
	}
	return b.String()
}

func (f *Formatter) formatEvents(r Events) string {
	if len(r.Items) == 0 {
		return "📅 No upcoming events scheduled."
	}

	var b strings.Builder
	b.WriteString("🎉 **Upcoming Events:**\n\n")
	for _, e := range r.Items {
		fmt.Fprintf(&b, "🗓️ **%s**\n   Date: %s\n   Loc: %s\n\n",
			e.Name, e.Date.Format("2006-01-02"), e.Location)
	}
	return b.String()
}

func (f *Formatter) formatFAQ(r FAQAnswer) string {
	if len(r.Matches) == 0 {
		return "❓ I don't have an answer for that yet. Please contact support."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Q:** %s\n**A:** %s", r.Matches[0].Question, r.Matches[0].Answer)

	if len(r.Matches) > 1 {
		b.WriteString("\n\n🔍 **Related questions:**\n")
		related := r.Matches[1:]
		if len(related) > relatedQuestionLimit {
			related = related[:relatedQuestionLimit]
		}
		for _, faq := range related {
			fmt.Fprintf(&b, "• %s\n", faq.Question)
		}
	}
	return b.String()
}

// orPlaceholder dereferences an optional text column, falling back to the
// placeholder for NULL values.
func orPlaceholder(s *string, placeholder string) string {
	if s == nil || *s == "" {
		return placeholder
	}
	return *s
}

// formatNumber renders a float without trailing zeros (3.0 -> "3", 3.5 -> "3.5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatMoney renders an amount with grouped thousands and two decimals.
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + b.String() + frac
}

// formatShortDate renders an optional date as d/m/yyyy, or "TBA" when unset.
func formatShortDate(t *time.Time) string {
	if t == nil {
		return "TBA"
	}
	return t.Format("2/1/2006")
}

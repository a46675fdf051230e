package intents

import (
	"context"
	"strings"

	"github.com/aiman/admitbot/internal/app/reply"
)

// trimesterMarker classifies calendar rows that belong on the academic
// calendar view.
const trimesterMarker = "Trimester"

// admissionRequirementsPlan resolves a program and lists its entry requirements.
type admissionRequirementsPlan struct {
	programs   ProgramStore
	admissions AdmissionStore
}

func (p *admissionRequirementsPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	identifier := params.Text("programId", "program_id", "programName")

	program, err := p.programs.Resolve(ctx, identifier)
	if err != nil {
		if isNotFound(err) {
			return reply.AdmissionRequirements{Found: false, Query: identifier}, nil
		}
		return nil, err
	}

	requirements, err := p.admissions.ListRequirements(ctx, program.ID)
	if err != nil {
		return nil, err
	}

	return reply.AdmissionRequirements{
		Found:        true,
		ProgramName:  program.Name,
		Requirements: requirements,
	}, nil
}

// importantDatesPlan returns a program's calendar, or the static intake
// periods when no program identifier was supplied.
type importantDatesPlan struct {
	programs   ProgramStore
	admissions AdmissionStore
}

func (p *importantDatesPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	identifier := params.Text("programId", "program_id")
	if identifier == "" {
		// Generic intake periods need no store access.
		return reply.ImportantDates{Generic: true}, nil
	}

	program, err := p.programs.Resolve(ctx, identifier)
	if err != nil {
		if isNotFound(err) {
			return reply.ImportantDates{Found: false}, nil
		}
		return nil, err
	}

	dates, err := p.admissions.ListImportantDates(ctx, program.ID)
	if err != nil {
		return nil, err
	}

	result := reply.ImportantDates{Found: true, ProgramName: program.Name}
	for _, date := range dates {
		if strings.Contains(date.EventType, trimesterMarker) {
			result.Trimester = append(result.Trimester, date)
		} else {
			result.Other = append(result.Other, date)
		}
	}

	return result, nil
}

// applicationProcedurePlan returns the static how-to-apply walkthrough.
type applicationProcedurePlan struct{}

func (p *applicationProcedurePlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	return reply.ApplicationProcedure{}, nil
}

// documentChecklistPlan resolves a program and lists its required documents.
type documentChecklistPlan struct {
	programs   ProgramStore
	admissions AdmissionStore
}

func (p *documentChecklistPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	identifier := params.Text("programId", "program_id", "programName")

	program, err := p.programs.Resolve(ctx, identifier)
	if err != nil {
		if isNotFound(err) {
			return reply.DocumentChecklist{Found: false}, nil
		}
		return nil, err
	}

	items, err := p.admissions.ListChecklist(ctx, program.ID)
	if err != nil {
		return nil, err
	}

	return reply.DocumentChecklist{
		Found:       true,
		ProgramName: program.Name,
		Items:       items,
	}, nil
}

// applicationStatusPlan looks up an application by its reference number.
type applicationStatusPlan struct {
	admissions AdmissionStore
}

func (p *applicationStatusPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	reference := params.Text("referenceNumber", "reference_number")

	application, err := p.admissions.GetApplication(ctx, reference)
	if err != nil {
		if isNotFound(err) {
			return reply.ApplicationStatus{Found: false}, nil
		}
		return nil, err
	}

	return reply.ApplicationStatus{Found: true, Application: *application}, nil
}

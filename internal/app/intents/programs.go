package intents

import (
	"context"

	"github.com/aiman/admitbot/internal/app/repositories"
	"github.com/aiman/admitbot/internal/app/reply"
	"github.com/aiman/admitbot/internal/pkg/apperrors"
	"github.com/aiman/admitbot/internal/pkg/logger"
)

// isNotFound reports whether err is a repository not-found outcome.
func isNotFound(err error) bool {
	return apperrors.Is(err, repositories.ErrNotFound)
}

// searchProgramsPlan filters programs by faculty, name and level.
type searchProgramsPlan struct {
	programs ProgramStore
}

func (p *searchProgramsPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	filter := repositories.ProgramFilter{
		Faculty:     params.Text("faculty"),
		ProgramName: params.Text("programName"),
		Level:       params.Text("level"),
	}

	programs, err := p.programs.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	return reply.ProgramList{Programs: programs}, nil
}

// programDetailsPlan resolves a program and composes its faculty name, key
// subjects and descriptive fields into one card.
type programDetailsPlan struct {
	programs  ProgramStore
	faculties FacultyStore
}

func (p *programDetailsPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	identifier := params.Text("programId", "program_id", "programName")

	program, err := p.programs.Resolve(ctx, identifier)
	if err != nil {
		if isNotFound(err) {
			return reply.ProgramDetails{Found: false, Query: identifier}, nil
		}
		return nil, err
	}

	// Dependent fetches degrade to placeholders rather than failing the card.
	facultyName, err := p.faculties.GetFacultyName(ctx, program.FacultyID)
	if err != nil {
		logger.Warn().Err(err).Int64("facultyID", program.FacultyID).Msg("Faculty name unavailable for program details")
		facultyName = ""
	}

	subjects, err := p.programs.ListSubjects(ctx, program.ID, subjectDisplayLimit)
	if err != nil {
		logger.Warn().Err(err).Int64("programID", program.ID).Msg("Subjects unavailable for program details")
		subjects = nil
	}

	return reply.ProgramDetails{
		Found:       true,
		Program:     *program,
		FacultyName: facultyName,
		Subjects:    subjects,
	}, nil
}

// compareProgramsPlan fetches two programs in one query and pairs each with
// its fee total.
type compareProgramsPlan struct {
	programs ProgramStore
	finance  FinanceStore
}

func (p *compareProgramsPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	ids := params.ProgramIDs()
	if len(ids) < 2 {
		// User-input error; no store access.
		return reply.ProgramComparison{TooFewIDs: true}, nil
	}

	first, second := ids[0], ids[1]
	programs, err := p.programs.GetByIDs(ctx, []int64{first, second})
	if err != nil {
		return nil, err
	}
	if len(programs) < 2 {
		return reply.ProgramComparison{Missing: true}, nil
	}

	comparison := reply.ProgramComparison{}
	for _, program := range programs {
		totals, err := p.finance.TotalsByCurrency(ctx, program.ID)
		if err != nil {
			return nil, err
		}

		entry := reply.ComparisonEntry{Program: program}
		if len(totals) > 0 {
			total := totals[0]
			entry.Total = &total
		}

		switch program.ID {
		case first:
			comparison.Left = entry
		case second:
			comparison.Right = entry
		}
	}

	return comparison, nil
}

// facultyMembersPlan lists academic staff for a faculty name fragment.
type facultyMembersPlan struct {
	faculties FacultyStore
}

func (p *facultyMembersPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	faculty := params.Text("faculty")

	members, err := p.faculties.ListMembers(ctx, faculty)
	if err != nil {
		return nil, err
	}

	return reply.FacultyMembers{Faculty: faculty, Members: members}, nil
}

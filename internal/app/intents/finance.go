package intents

import (
	"context"

	"github.com/aiman/admitbot/internal/app/reply"
)

// tuitionFeesPlan resolves a program and lists its per-semester fees.
type tuitionFeesPlan struct {
	programs ProgramStore
	finance  FinanceStore
}

func (p *tuitionFeesPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	identifier := params.Text("programId", "program_id", "programName")

	program, err := p.programs.Resolve(ctx, identifier)
	if err != nil {
		if isNotFound(err) {
			return reply.TuitionFees{Found: false}, nil
		}
		return nil, err
	}

	fees, err := p.finance.ListTuitionFees(ctx, program.ID)
	if err != nil {
		return nil, err
	}

	return reply.TuitionFees{
		Found:       true,
		ProgramName: program.Name,
		Fees:        fees,
	}, nil
}

// totalCostPlan resolves a program and sums all its fee rows. A program with
// no fee rows yields a nil total, which renders as "Unknown".
type totalCostPlan struct {
	programs ProgramStore
	finance  FinanceStore
}

func (p *totalCostPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	identifier := params.Text("programId", "program_id", "programName")

	program, err := p.programs.Resolve(ctx, identifier)
	if err != nil {
		if isNotFound(err) {
			return reply.TotalCost{Found: false}, nil
		}
		return nil, err
	}

	total, err := p.finance.TotalCost(ctx, program.ID)
	if err != nil {
		return nil, err
	}

	return reply.TotalCost{
		Found:       true,
		ProgramName: program.Name,
		Total:       total,
	}, nil
}

// scholarshipsPlan lists open scholarships.
type scholarshipsPlan struct {
	finance FinanceStore
}

func (p *scholarshipsPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	scholarships, err := p.finance.ListScholarships(ctx)
	if err != nil {
		return nil, err
	}

	return reply.Scholarships{Items: scholarships}, nil
}

// financialAidPlan lists financial aid options, optionally narrowed by type.
type financialAidPlan struct {
	finance FinanceStore
}

func (p *financialAidPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	options, err := p.finance.ListFinancialAid(ctx, params.Text("type"))
	if err != nil {
		return nil, err
	}

	return reply.FinancialAid{Items: options}, nil
}

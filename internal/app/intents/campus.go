package intents

import (
	"context"

	"github.com/aiman/admitbot/internal/app/reply"
)

// campusFacilitiesPlan lists campus facilities.
type campusFacilitiesPlan struct {
	campus CampusStore
}

func (p *campusFacilitiesPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	facilities, err := p.campus.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}

	return reply.Facilities{Items: facilities}, nil
}

// accommodationPlan lists hostel options.
type accommodationPlan struct {
	campus CampusStore
}

func (p *accommodationPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	options, err := p.campus.ListAccommodation(ctx)
	if err != nil {
		return nil, err
	}

	return reply.Accommodation{Items: options}, nil
}

// studentClubsPlan lists student clubs, optionally narrowed by category.
type studentClubsPlan struct {
	campus CampusStore
}

func (p *studentClubsPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	clubs, err := p.campus.ListClubs(ctx, params.Text("category"))
	if err != nil {
		return nil, err
	}

	return reply.StudentClubs{Items: clubs}, nil
}

// upcomingEventsPlan lists future-dated campus events.
type upcomingEventsPlan struct {
	campus CampusStore
}

func (p *upcomingEventsPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	events, err := p.campus.ListUpcomingEvents(ctx)
	if err != nil {
		return nil, err
	}

	return reply.Events{Items: events}, nil
}

// searchFAQPlan matches a keyword against FAQ questions and categories.
type searchFAQPlan struct {
	faqs FAQStore
}

func (p *searchFAQPlan) Execute(ctx context.Context, params Params) (reply.Result, error) {
	matches, err := p.faqs.Search(ctx, params.Text("keyword"))
	if err != nil {
		return nil, err
	}

	return reply.FAQAnswer{Matches: matches}, nil
}

package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiman/admitbot/internal/app/models"
	"github.com/aiman/admitbot/internal/pkg/logger"
)

// Per-listing row caps for the campus catalog queries.
const (
	facilityLimit      = 4
	accommodationLimit = 3
	clubLimit          = 5
	eventLimit         = 3
)

// CampusRepository handles campus facility, accommodation, club and event queries.
type CampusRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCampusRepository creates a new CampusRepository
func NewCampusRepository(db *pgxpool.Pool) *CampusRepository {
	return &CampusRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListFacilities returns up to four campus facilities.
func (r *CampusRepository) ListFacilities(ctx context.Context) ([]models.CampusFacility, error) {
	sql, args, err := r.sb.Select("facility_id", "facility_name", "description").
		From("campus_facilities").
		OrderBy("facility_id ASC").
		Limit(facilityLimit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list facilities SQL")
		return nil, fmt.Errorf("failed to build list facilities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list facilities query")
		return nil, fmt.Errorf("error listing facilities: %w", err)
	}
	defer rows.Close()

	facilities := []models.CampusFacility{}
	for rows.Next() {
		facility := models.CampusFacility{}
		if err := rows.Scan(&facility.ID, &facility.Name, &facility.Description); err != nil {
			return nil, fmt.Errorf("error scanning facility row: %w", err)
		}
		facilities = append(facilities, facility)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating facility rows: %w", err)
	}

	return facilities, nil
}

// ListAccommodation returns up to three hostel options.
func (r *CampusRepository) ListAccommodation(ctx context.Context) ([]models.Accommodation, error) {
	sql, args, err := r.sb.Select("accommodation_id", "hostel_name", "room_type",
		"monthly_fee", "available_slots").
		From("accommodations").
		OrderBy("accommodation_id ASC").
		Limit(accommodationLimit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list accommodation SQL")
		return nil, fmt.Errorf("failed to build list accommodation query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list accommodation query")
		return nil, fmt.Errorf("error listing accommodation: %w", err)
	}
	defer rows.Close()

	options := []models.Accommodation{}
	for rows.Next() {
		option := models.Accommodation{}
		if err := rows.Scan(&option.ID, &option.HostelName, &option.RoomType,
			&option.MonthlyFee, &option.AvailableSlots); err != nil {
			return nil, fmt.Errorf("error scanning accommodation row: %w", err)
		}
		options = append(options, option)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accommodation rows: %w", err)
	}

	return options, nil
}

// ListClubs returns up to five student clubs, optionally narrowed by a
// substring match on the category.
func (r *CampusRepository) ListClubs(ctx context.Context, category string) ([]models.StudentClub, error) {
	query := r.sb.Select("club_id", "club_name", "category").
		From("student_clubs").
		OrderBy("club_id ASC").
		Limit(clubLimit)

	if category != "" {
		query = query.Where(squirrel.ILike{"category": "%" + category + "%"})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list clubs SQL")
		return nil, fmt.Errorf("failed to build list clubs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list clubs query")
		return nil, fmt.Errorf("error listing clubs: %w", err)
	}
	defer rows.Close()

	clubs := []models.StudentClub{}
	for rows.Next() {
		club := models.StudentClub{}
		if err := rows.Scan(&club.ID, &club.Name, &club.Category); err != nil {
			return nil, fmt.Errorf("error scanning club row: %w", err)
		}
		clubs = append(clubs, club)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating club rows: %w", err)
	}

	return clubs, nil
}

// ListUpcomingEvents returns up to three events dated today or later.
func (r *CampusRepository) ListUpcomingEvents(ctx context.Context) ([]models.Event, error) {
	sql, args, err := r.sb.Select("event_id", "event_name", "event_date", "location").
		From("events").
		Where(squirrel.Expr("event_date >= CURRENT_DATE")).
		OrderBy("event_date ASC").
		Limit(eventLimit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list upcoming events SQL")
		return nil, fmt.Errorf("failed to build list upcoming events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list upcoming events query")
		return nil, fmt.Errorf("error listing upcoming events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		event := models.Event{}
		if err := rows.Scan(&event.ID, &event.Name, &event.Date, &event.Location); err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

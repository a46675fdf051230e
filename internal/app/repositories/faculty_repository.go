package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiman/admitbot/internal/app/models"
	"github.com/aiman/admitbot/internal/pkg/logger"
)

// Faculty error types
var (
	// ErrFacultyNotFound is returned when a faculty is not found.
	ErrFacultyNotFound = ErrNotFound // Use shared ErrNotFound
)

// memberLimit caps the faculty member listing.
const memberLimit = 4

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetFacultyName retrieves a faculty's name by ID
func (r *FacultyRepository) GetFacultyName(ctx context.Context, id int64) (string, error) {
	sql, args, err := r.sb.Select("faculty_name").
		From("faculties").
		Where(squirrel.Eq{"faculty_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty name SQL")
		return "", fmt.Errorf("failed to build get faculty name query: %w", err)
	}

	var name string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty name")
		return "", fmt.Errorf("error getting faculty name: %w", err)
	}

	return name, nil
}

// ListMembers returns up to four members of faculties whose name contains the
// given fragment.
func (r *FacultyRepository) ListMembers(ctx context.Context, facultyName string) ([]models.FacultyMember, error) {
	sql, args, err := r.sb.Select("m.member_id", "m.faculty_id", "m.name",
		"m.designation", "m.specialization", "m.email").
		From("faculty_members m").
		Join("faculties f ON m.faculty_id = f.faculty_id").
		Where(squirrel.ILike{"f.faculty_name": "%" + facultyName + "%"}).
		Limit(memberLimit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list faculty members SQL")
		return nil, fmt.Errorf("failed to build list faculty members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("faculty", facultyName).Msg("Error executing list faculty members query")
		return nil, fmt.Errorf("error listing faculty members: %w", err)
	}
	defer rows.Close()

	members := []models.FacultyMember{}
	for rows.Next() {
		member := models.FacultyMember{}
		if err := rows.Scan(&member.ID, &member.FacultyID, &member.Name,
			&member.Designation, &member.Specialization, &member.Email); err != nil {
			return nil, fmt.Errorf("error scanning faculty member row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty member rows: %w", err)
	}

	return members, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiman/admitbot/internal/app/models"
	"github.com/aiman/admitbot/internal/pkg/logger"
)

// Program error types
var (
	// ErrProgramNotFound is returned when a program is not found.
	ErrProgramNotFound = ErrNotFound // Use shared ErrNotFound
)

// searchLimit caps the rows returned by a program search.
const searchLimit = 40

// ProgramFilter narrows a program search. Zero-value fields are skipped, so
// the filters compose conjunctively.
type ProgramFilter struct {
	Faculty     string // substring match on the faculty name
	ProgramName string // substring match on the program name
	Level       string // exact match on the academic level
}

// ProgramRepository handles program database operations
type ProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// isNumeric reports whether s consists entirely of ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// resolveQuery builds the dual-mode lookup for an ambiguous identifier. An
// all-digit identifier addresses the numeric primary key; anything else
// matches the program name case-insensitively, lowest program ID winning.
// Digits that overflow int64 cannot address any row.
func (r *ProgramRepository) resolveQuery(identifier string) (squirrel.SelectBuilder, error) {
	query := r.sb.Select(
		"program_id", "program_name", "level", "duration_years",
		"faculty_id", "description", "career_prospects").
		From("programs")

	if isNumeric(identifier) {
		id, err := strconv.ParseInt(identifier, 10, 64)
		if err != nil {
			return squirrel.SelectBuilder{}, ErrProgramNotFound
		}
		return query.Where(squirrel.Eq{"program_id": id}).Limit(1), nil
	}

	return query.Where(squirrel.ILike{"program_name": "%" + identifier + "%"}).
		OrderBy("program_id ASC").
		Limit(1), nil
}

// Resolve looks up a program from an ambiguous identifier. An all-digit
// identifier is treated as the numeric primary key; anything else is matched
// case-insensitively as a substring of the program name, first row wins.
func (r *ProgramRepository) Resolve(ctx context.Context, identifier string) (*models.Program, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrProgramNotFound
	}

	query, err := r.resolveQuery(identifier)
	if err != nil {
		return nil, err
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building resolve program SQL")
		return nil, fmt.Errorf("failed to build resolve program query: %w", err)
	}

	program := &models.Program{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&program.ID, &program.Name, &program.Level, &program.DurationYears,
		&program.FacultyID, &program.Description, &program.CareerProspects)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		logger.Error().Err(err).Str("identifier", identifier).Msg("Error resolving program")
		return nil, fmt.Errorf("error resolving program: %w", err)
	}

	return program, nil
}

// Search returns programs matching the filter, ordered by ID, capped at 40 rows.
func (r *ProgramRepository) Search(ctx context.Context, filter ProgramFilter) ([]models.Program, error) {
	query := r.sb.Select("p.program_id", "p.program_name", "p.level").
		From("programs p").
		Join("faculties f ON p.faculty_id = f.faculty_id")

	if filter.Faculty != "" {
		query = query.Where(squirrel.ILike{"f.faculty_name": "%" + filter.Faculty + "%"})
	}
	if filter.ProgramName != "" {
		query = query.Where(squirrel.ILike{"p.program_name": "%" + filter.ProgramName + "%"})
	}
	if filter.Level != "" {
		query = query.Where(squirrel.Eq{"p.level": filter.Level})
	}

	sql, args, err := query.OrderBy("p.program_id ASC").Limit(searchLimit).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building search programs SQL")
		return nil, fmt.Errorf("failed to build search programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing search programs query")
		return nil, fmt.Errorf("error searching programs: %w", err)
	}
	defer rows.Close()

	programs := []models.Program{}
	for rows.Next() {
		program := models.Program{}
		if err := rows.Scan(&program.ID, &program.Name, &program.Level); err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// GetByIDs fetches the given programs with their faculty names in one query,
// ordered by program ID. Programs that do not exist are simply absent from
// the result.
func (r *ProgramRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Program, error) {
	sql, args, err := r.sb.Select(
		"p.program_id", "p.program_name", "p.level", "p.duration_years",
		"p.faculty_id", "f.faculty_name").
		From("programs p").
		Join("faculties f ON p.faculty_id = f.faculty_id").
		Where(squirrel.Eq{"p.program_id": ids}).
		OrderBy("p.program_id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get programs by IDs SQL")
		return nil, fmt.Errorf("failed to build get programs by IDs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get programs by IDs query")
		return nil, fmt.Errorf("error getting programs by IDs: %w", err)
	}
	defer rows.Close()

	programs := []models.Program{}
	for rows.Next() {
		program := models.Program{}
		if err := rows.Scan(&program.ID, &program.Name, &program.Level,
			&program.DurationYears, &program.FacultyID, &program.FacultyName); err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// ListSubjects returns up to limit subjects linked to a program, in join-table
// insertion order.
func (r *ProgramRepository) ListSubjects(ctx context.Context, programID int64, limit uint64) ([]models.Subject, error) {
	sql, args, err := r.sb.Select("s.subject_id", "s.subject_name", "s.credit_hours").
		From("program_subjects ps").
		Join("subjects s ON ps.subject_id = s.subject_id").
		Where(squirrel.Eq{"ps.program_id": programID}).
		Limit(limit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list subjects SQL")
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", programID).Msg("Error executing list subjects query")
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		subject := models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.CreditHours); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}

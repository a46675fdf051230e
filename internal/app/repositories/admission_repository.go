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

// Application error types
var (
	// ErrApplicationNotFound is returned when no application matches a reference number.
	ErrApplicationNotFound = ErrNotFound // Use shared ErrNotFound
)

// AdmissionRepository handles admission-related database operations:
// requirements, document checklists, important dates and application status.
type AdmissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdmissionRepository creates a new AdmissionRepository
func NewAdmissionRepository(db *pgxpool.Pool) *AdmissionRepository {
	return &AdmissionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListRequirements returns all admission requirements for a program.
func (r *AdmissionRepository) ListRequirements(ctx context.Context, programID int64) ([]models.AdmissionRequirement, error) {
	sql, args, err := r.sb.Select("requirement_id", "program_id", "qualification_type",
		"minimum_grade", "additional_requirements").
		From("admission_requirements").
		Where(squirrel.Eq{"program_id": programID}).
		OrderBy("requirement_id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list requirements SQL")
		return nil, fmt.Errorf("failed to build list requirements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", programID).Msg("Error executing list requirements query")
		return nil, fmt.Errorf("error listing requirements: %w", err)
	}
	defer rows.Close()

	requirements := []models.AdmissionRequirement{}
	for rows.Next() {
		req := models.AdmissionRequirement{}
		if err := rows.Scan(&req.ID, &req.ProgramID, &req.QualificationType,
			&req.MinimumGrade, &req.AdditionalRequirements); err != nil {
			return nil, fmt.Errorf("error scanning requirement row: %w", err)
		}
		requirements = append(requirements, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating requirement rows: %w", err)
	}

	return requirements, nil
}

// ListChecklist returns the document checklist for a program.
func (r *AdmissionRepository) ListChecklist(ctx context.Context, programID int64) ([]models.ChecklistItem, error) {
	sql, args, err := r.sb.Select("checklist_id", "program_id", "document_name", "is_mandatory").
		From("document_checklists").
		Where(squirrel.Eq{"program_id": programID}).
		OrderBy("checklist_id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list checklist SQL")
		return nil, fmt.Errorf("failed to build list checklist query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", programID).Msg("Error executing list checklist query")
		return nil, fmt.Errorf("error listing checklist: %w", err)
	}
	defer rows.Close()

	items := []models.ChecklistItem{}
	for rows.Next() {
		item := models.ChecklistItem{}
		if err := rows.Scan(&item.ID, &item.ProgramID, &item.DocumentName, &item.IsMandatory); err != nil {
			return nil, fmt.Errorf("error scanning checklist row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checklist rows: %w", err)
	}

	return items, nil
}

// ListImportantDates returns a program's calendar entries ordered by start date.
func (r *AdmissionRepository) ListImportantDates(ctx context.Context, programID int64) ([]models.ImportantDate, error) {
	sql, args, err := r.sb.Select("date_id", "program_id", "event_type", "start_date", "description").
		From("important_dates").
		Where(squirrel.Eq{"program_id": programID}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list important dates SQL")
		return nil, fmt.Errorf("failed to build list important dates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", programID).Msg("Error executing list important dates query")
		return nil, fmt.Errorf("error listing important dates: %w", err)
	}
	defer rows.Close()

	dates := []models.ImportantDate{}
	for rows.Next() {
		date := models.ImportantDate{}
		if err := rows.Scan(&date.ID, &date.ProgramID, &date.EventType,
			&date.StartDate, &date.Description); err != nil {
			return nil, fmt.Errorf("error scanning important date row: %w", err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating important date rows: %w", err)
	}

	return dates, nil
}

// GetApplication retrieves an application by its reference number, exact match only.
func (r *AdmissionRepository) GetApplication(ctx context.Context, referenceNumber string) (*models.Application, error) {
	sql, args, err := r.sb.Select("reference_number", "status", "remarks").
		From("applications").
		Where(squirrel.Eq{"reference_number": referenceNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get application SQL")
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	application := &models.Application{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&application.ReferenceNumber, &application.Status, &application.Remarks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		logger.Error().Err(err).Str("referenceNumber", referenceNumber).Msg("Error scanning application row")
		return nil, fmt.Errorf("error getting application: %w", err)
	}

	return application, nil
}

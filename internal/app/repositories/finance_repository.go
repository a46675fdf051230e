package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiman/admitbot/internal/app/models"
	"github.com/aiman/admitbot/internal/pkg/logger"
)

// scholarshipLimit caps the scholarship listing.
const scholarshipLimit = 3

// FinanceRepository handles tuition fee, scholarship and financial aid queries.
type FinanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFinanceRepository creates a new FinanceRepository
func NewFinanceRepository(db *pgxpool.Pool) *FinanceRepository {
	return &FinanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListTuitionFees returns a program's fee rows ordered by semester.
func (r *FinanceRepository) ListTuitionFees(ctx context.Context, programID int64) ([]models.TuitionFee, error) {
	sql, args, err := r.sb.Select("fee_id", "program_id", "semester", "amount", "currency").
		From("tuition_fees").
		Where(squirrel.Eq{"program_id": programID}).
		OrderBy("semester ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list tuition fees SQL")
		return nil, fmt.Errorf("failed to build list tuition fees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", programID).Msg("Error executing list tuition fees query")
		return nil, fmt.Errorf("error listing tuition fees: %w", err)
	}
	defer rows.Close()

	fees := []models.TuitionFee{}
	for rows.Next() {
		fee := models.TuitionFee{}
		if err := rows.Scan(&fee.ID, &fee.ProgramID, &fee.Semester, &fee.Amount, &fee.Currency); err != nil {
			return nil, fmt.Errorf("error scanning tuition fee row: %w", err)
		}
		fees = append(fees, fee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tuition fee rows: %w", err)
	}

	return fees, nil
}

// TotalsByCurrency sums a program's fee rows grouped by currency.
func (r *FinanceRepository) TotalsByCurrency(ctx context.Context, programID int64) ([]models.FeeTotal, error) {
	sql, args, err := r.sb.Select("SUM(amount) AS total", "currency").
		From("tuition_fees").
		Where(squirrel.Eq{"program_id": programID}).
		GroupBy("currency").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building fee totals SQL")
		return nil, fmt.Errorf("failed to build fee totals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", programID).Msg("Error executing fee totals query")
		return nil, fmt.Errorf("error summing fees by currency: %w", err)
	}
	defer rows.Close()

	totals := []models.FeeTotal{}
	for rows.Next() {
		total := models.FeeTotal{}
		if err := rows.Scan(&total.Total, &total.Currency); err != nil {
			return nil, fmt.Errorf("error scanning fee total row: %w", err)
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee total rows: %w", err)
	}

	return totals, nil
}

// TotalCost sums all fee rows for a program. The result is nil when the
// program has no fee rows; SUM over zero rows is NULL, and that distinction
// matters to the caller.
func (r *FinanceRepository) TotalCost(ctx context.Context, programID int64) (*float64, error) {
	sql, args, err := r.sb.Select("SUM(amount)").
		From("tuition_fees").
		Where(squirrel.Eq{"program_id": programID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building total cost SQL")
		return nil, fmt.Errorf("failed to build total cost query: %w", err)
	}

	var total *float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Int64("programID", programID).Msg("Error scanning total cost")
		return nil, fmt.Errorf("error calculating total cost: %w", err)
	}

	return total, nil
}

// ListScholarships returns up to three scholarships in natural order.
func (r *FinanceRepository) ListScholarships(ctx context.Context) ([]models.Scholarship, error) {
	sql, args, err := r.sb.Select("scholarship_id", "scholarship_name", "amount", "application_deadline").
		From("scholarships").
		OrderBy("scholarship_id ASC").
		Limit(scholarshipLimit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list scholarships SQL")
		return nil, fmt.Errorf("failed to build list scholarships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list scholarships query")
		return nil, fmt.Errorf("error listing scholarships: %w", err)
	}
	defer rows.Close()

	scholarships := []models.Scholarship{}
	for rows.Next() {
		scholarship := models.Scholarship{}
		if err := rows.Scan(&scholarship.ID, &scholarship.Name,
			&scholarship.Amount, &scholarship.Deadline); err != nil {
			return nil, fmt.Errorf("error scanning scholarship row: %w", err)
		}
		scholarships = append(scholarships, scholarship)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scholarship rows: %w", err)
	}

	return scholarships, nil
}

// ListFinancialAid returns all financial aid options, optionally narrowed by a
// substring match on the aid type.
func (r *FinanceRepository) ListFinancialAid(ctx context.Context, aidType string) ([]models.FinancialAid, error) {
	query := r.sb.Select("aid_id", "aid_name", "aid_type", "eligibility_criteria").
		From("financial_aid").
		OrderBy("aid_id ASC")

	if aidType != "" {
		query = query.Where(squirrel.ILike{"aid_type": "%" + aidType + "%"})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list financial aid SQL")
		return nil, fmt.Errorf("failed to build list financial aid query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list financial aid query")
		return nil, fmt.Errorf("error listing financial aid: %w", err)
	}
	defer rows.Close()

	options := []models.FinancialAid{}
	for rows.Next() {
		aid := models.FinancialAid{}
		if err := rows.Scan(&aid.ID, &aid.Name, &aid.Type, &aid.EligibilityCriteria); err != nil {
			return nil, fmt.Errorf("error scanning financial aid row: %w", err)
		}
		options = append(options, aid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating financial aid rows: %w", err)
	}

	return options, nil
}

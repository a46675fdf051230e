package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aiman/admitbot/internal/app/models"
	"github.com/aiman/admitbot/internal/pkg/logger"
)

// faqLimit caps the candidate rows fetched for one keyword search.
const faqLimit = 20

// FAQRepository handles FAQ database operations
type FAQRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFAQRepository creates a new FAQRepository
func NewFAQRepository(db *pgxpool.Pool) *FAQRepository {
	return &FAQRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Search matches the keyword case-insensitively against the question text or
// the category, capped at 20 candidates in natural order.
func (r *FAQRepository) Search(ctx context.Context, keyword string) ([]models.FAQ, error) {
	pattern := "%" + keyword + "%"
	sql, args, err := r.sb.Select("faq_id", "question", "answer", "category").
		From("faqs").
		Where(squirrel.Or{
			squirrel.ILike{"question": pattern},
			squirrel.ILike{"category": pattern},
		}).
		OrderBy("faq_id ASC").
		Limit(faqLimit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building FAQ search SQL")
		return nil, fmt.Errorf("failed to build FAQ search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("keyword", keyword).Msg("Error executing FAQ search query")
		return nil, fmt.Errorf("error searching FAQs: %w", err)
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		faq := models.FAQ{}
		if err := rows.Scan(&faq.ID, &faq.Question, &faq.Answer, &faq.Category); err != nil {
			return nil, fmt.Errorf("error scanning FAQ row: %w", err)
		}
		faqs = append(faqs, faq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating FAQ rows: %w", err)
	}

	return faqs, nil
}

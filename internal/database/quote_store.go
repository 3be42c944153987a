package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Brendon2203/techsolutions/internal/domain"
	"github.com/Brendon2203/techsolutions/internal/logging"
	"github.com/Brendon2203/techsolutions/internal/metrics"
	apperrors "github.com/Brendon2203/techsolutions/pkg/errors"
)

// Insert stores one submission inside its own transaction. On failure the
// transaction is rolled back and a storage AppError is returned.
func (s *Store) Insert(ctx context.Context, sub *domain.QuoteSubmission) (*domain.QuoteRequest, error) {
	start := time.Now()

	req, err := domain.NewQuoteRequest(sub)
	if err != nil {
		return nil, apperrors.Storage("failed to encode services", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(req).Error
	})
	metrics.RecordDBQuery("insert_quote_request", time.Since(start), err)
	if err != nil {
		logging.Error("insert rolled back", "component", "database", "error", err)
		return nil, apperrors.Storage("failed to save quote request", err)
	}

	return req, nil
}

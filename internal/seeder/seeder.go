// Package seeder populates an empty company collection from the upstream
// quotes endpoint.
package seeder

import (
	"context"
	"fmt"

	"iex-companies/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Store interface {
	CountCompanies(context.Context) (int64, error)
	InsertCompany(context.Context, models.Company) (primitive.ObjectID, error)
}

type Fetcher interface {
	FetchTops(ctx context.Context, symbols []string) ([]models.Company, error)
}

// Publisher receives every record right after it is inserted.
type Publisher interface {
	Publish(context.Context, models.Company) error
}

type Seeder struct {
	store     Store
	fetcher   Fetcher
	publisher Publisher
	symbols   []string
	logger    *zap.Logger
}

// NewSeeder builds a Seeder. publisher may be nil.
func NewSeeder(store Store, fetcher Fetcher, publisher Publisher, symbols []string, logger *zap.Logger) *Seeder {
	return &Seeder{
		store:     store,
		fetcher:   fetcher,
		publisher: publisher,
		symbols:   symbols,
		logger:    logger,
	}
}

// Seed fetches and inserts quotes only when the collection is empty, and
// returns how many records it inserted. On a non-empty collection it does
// nothing. There is no rollback: an error part way through leaves the
// records inserted so far in place, and their count is returned with it.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	count, err := s.store.CountCompanies(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	if count > 0 {
		s.logger.Info("collection already seeded, skipping fetch", zap.Int64("count", count))
		return 0, nil
	}

	companies, err := s.fetcher.FetchTops(ctx, s.symbols)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	inserted := 0
	for _, company := range companies {
		id, err := s.store.InsertCompany(ctx, company)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert %s: %w", company.Symbol, err)
		}
		company.Id = id
		inserted++
		s.logger.Info("Inserting "+company.Symbol, zap.String("symbol", company.Symbol))

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, company); err != nil {
				return inserted, fmt.Errorf("failed to publish %s: %w", company.Symbol, err)
			}
		}
	}

	s.logger.Info("seeding complete", zap.Int("inserted", inserted), zap.Int("received", len(companies)))
	return inserted, nil
}

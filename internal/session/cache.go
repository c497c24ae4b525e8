// Package session holds the tables generated for one interactive demo
// session. Generation and unification run once, lazily, on first access;
// every later view re-reads the same cached slices.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/analyticshub/ahub-demo/internal/domain"
)

// SourceGenerator produces the three synthetic source tables.
type SourceGenerator interface {
	GenerateSources() ([]domain.ValuationRecord, []domain.CustodyRecord, []domain.AnalyticsRecord, error)
}

// Unifier joins the three source tables into the unified table.
type Unifier interface {
	Unify(
		valuations []domain.ValuationRecord,
		custody []domain.CustodyRecord,
		analytics []domain.AnalyticsRecord,
	) ([]domain.FundRecord, error)
}

// Tables bundles the four cached tables handed to the presentation layer.
// Consumers must treat the slices as read-only: the same backing arrays are
// shared by every view for the rest of the session.
type Tables struct {
	Valuations []domain.ValuationRecord
	Custody    []domain.CustodyRecord
	Analytics  []domain.AnalyticsRecord
	Unified    []domain.FundRecord
}

// Cache owns the session's tables. It is constructed once per session and
// passed by reference to consumers; the generator and unifier themselves
// stay stateless. Not safe for concurrent use — the demo is single-threaded
// by design.
type Cache struct {
	id        uuid.UUID
	generator SourceGenerator
	unifier   Unifier

	generated bool
	tables    Tables
}

// NewCache creates a session cache over the given generator and unifier.
func NewCache(generator SourceGenerator, unifier Unifier) *Cache {
	return &Cache{
		id:        uuid.New(),
		generator: generator,
		unifier:   unifier,
	}
}

// ID returns the session identifier shown in the dashboard footer.
func (c *Cache) ID() uuid.UUID {
	return c.id
}

// Tables returns the session's tables, generating and unifying them on the
// first call. Subsequent calls return the cached result without
// recomputation.
func (c *Cache) Tables() (Tables, error) {
	if c.generated {
		return c.tables, nil
	}

	valuations, custody, analytics, err := c.generator.GenerateSources()
	if err != nil {
		return Tables{}, fmt.Errorf("failed to generate source tables: %w", err)
	}

	unified, err := c.unifier.Unify(valuations, custody, analytics)
	if err != nil {
		return Tables{}, fmt.Errorf("failed to unify source tables: %w", err)
	}

	c.tables = Tables{
		Valuations: valuations,
		Custody:    custody,
		Analytics:  analytics,
		Unified:    unified,
	}
	c.generated = true

	return c.tables, nil
}

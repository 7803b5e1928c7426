package store

import (
	"context"
	"slices"
	"sync"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgerror"
)

// InMemoryStore owns the dashboard dataset and the session state (filters and
// active section). Every read returns a copy.
type InMemoryStore struct {
	mu      sync.RWMutex
	data    entity.Dataset
	filters entity.FilterState
	section entity.Section
}

// NewInMemoryStore seeds a store with a copy of ds. The live sequence is
// trimmed to entity.MaxLiveTransactions.
func NewInMemoryStore(ds entity.Dataset) *InMemoryStore {
	data := ds.Clone()
	if len(data.Transactions) > entity.MaxLiveTransactions {
		data.Transactions = data.Transactions[:entity.MaxLiveTransactions]
	}

	return &InMemoryStore{
		data:    data,
		section: entity.SectionDashboard,
	}
}

func (s *InMemoryStore) Snapshot(ctx context.Context) entity.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Clone()
}

func (s *InMemoryStore) Transactions(ctx context.Context) []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Transactions)
}

// PrependTransaction inserts tx at the head of the live sequence and evicts
// the oldest entries beyond the cap.
func (s *InMemoryStore) PrependTransaction(ctx context.Context, tx entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entity.Transaction, 0, min(len(s.data.Transactions)+1, entity.MaxLiveTransactions))
	next = append(next, tx)
	for _, old := range s.data.Transactions {
		if len(next) == entity.MaxLiveTransactions {
			break
		}
		next = append(next, old)
	}
	s.data.Transactions = next
}

func (s *InMemoryStore) Tickets(ctx context.Context) []entity.SupportTicket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Tickets)
}

func (s *InMemoryStore) ErrorCodes(ctx context.Context) []entity.ErrorCode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.ErrorCodes)
}

func (s *InMemoryStore) Endpoints(ctx context.Context) []entity.APIEndpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Endpoints)
}

func (s *InMemoryStore) Knowledge(ctx context.Context) []entity.KnowledgeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.Knowledge)
}

func (s *InMemoryStore) PaymentMethods(ctx context.Context) []entity.PaymentMethodShare {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.data.PaymentMethods)
}

// Guide returns the troubleshooting guide for issue or pkgerror.ErrNotFound.
func (s *InMemoryStore) Guide(ctx context.Context, issue string) (entity.TroubleshootingGuide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.data.Guides {
		if g.Issue == issue {
			return entity.TroubleshootingGuide{Issue: g.Issue, Steps: slices.Clone(g.Steps)}, nil
		}
	}

	return entity.TroubleshootingGuide{}, pkgerror.ErrNotFound
}

func (s *InMemoryStore) Metrics(ctx context.Context) entity.SystemMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Metrics.Clone()
}

// AddTransactionVolume adjusts the volume counter and returns the new metrics.
func (s *InMemoryStore) AddTransactionVolume(ctx context.Context, delta int64) entity.SystemMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Metrics.TransactionVolume += delta

	return s.data.Metrics.Clone()
}

func (s *InMemoryStore) Filters(ctx context.Context) entity.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filters
}

func (s *InMemoryStore) SetFilters(ctx context.Context, filters entity.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = filters
}

func (s *InMemoryStore) ActiveSection(ctx context.Context) entity.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.section
}

func (s *InMemoryStore) SetActiveSection(ctx context.Context, section entity.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.section = section
}

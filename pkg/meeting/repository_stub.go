package meeting

import (
	"context"
	"sort"
	"sync"
)

// StubRepository keeps records in memory for tests. An optional Err makes
// every operation fail.
type StubRepository struct {
	mu      sync.Mutex
	Records []Record
	Err     error
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (r *StubRepository) Store(_ context.Context, record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Records = append(r.Records, record)
	return nil
}

func (r *StubRepository) GetRecent(_ context.Context, limit int) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	records := make([]Record, len(r.Records))
	copy(records, r.Records)
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *StubRepository) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Records = nil
	r.Err = nil
}

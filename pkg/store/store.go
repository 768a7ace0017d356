// Package store owns the in-memory working set of lead records and
// mediates every mutation between callers and the remote authoritative
// service. It is the sole writer of the working set; readers get copies.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/internal/utils"
	"github.com/tradethiopiainstructor01-web/tradethiopia-sub004/pkg/lead"
)

// RemoteClient is the surface of the lead-records service the store
// depends on. *remote.Client satisfies it; tests substitute fakes.
type RemoteClient interface {
	List(ctx context.Context) ([]lead.Record, error)
	Import(ctx context.Context, rows []lead.Record, replaceExisting bool) ([]lead.Record, error)
	Create(ctx context.Context, row lead.Record) (lead.Record, error)
	Update(ctx context.Context, id string, row lead.Record) (lead.Record, error)
	Delete(ctx context.Context, id string) error
}

// Source names where the current working set came from.
type Source int

const (
	// SourceNone means Load has not run yet.
	SourceNone Source = iota
	// SourceRemote means the working set mirrors the remote store.
	SourceRemote
	// SourceFallback means the remote was unreachable or empty and the
	// working set holds the built-in sample dataset.
	SourceFallback
)

// LoadResult is the tagged outcome of Load. Fallback is a warning, never
// an error: the caller always ends up with a usable working set.
type LoadResult struct {
	Source  Source
	Count   int
	Warning string
}

// Store is the reconciliation store. All methods are safe for concurrent
// use; the last operation to resolve wins in the working set.
type Store struct {
	client RemoteClient

	mu      sync.Mutex
	records []lead.Record
	source  Source
}

// New builds a store around the given remote client.
func New(client RemoteClient) *Store {
	return &Store{client: client}
}

// Load fetches the remote working set. A failed or empty fetch degrades to
// the built-in sample dataset; that path surfaces as a warning in the
// result, not as an error.
func (s *Store) Load(ctx context.Context) LoadResult {
	records, err := s.client.List(ctx)
	if ctx.Err() != nil {
		// Caller went away while the request was in flight; leave the
		// working set alone.
		return LoadResult{Source: s.CurrentSource(), Warning: "load canceled"}
	}

	var result LoadResult
	switch {
	case err != nil:
		result = LoadResult{
			Source:  SourceFallback,
			Warning: fmt.Sprintf("remote store unreachable, showing sample data: %v", err),
		}
		records = lead.SampleRecords()
	case len(records) == 0:
		result = LoadResult{
			Source:  SourceFallback,
			Warning: "remote store holds no records, showing sample data",
		}
		records = lead.SampleRecords()
	default:
		result = LoadResult{Source: SourceRemote}
	}
	result.Count = len(records)

	s.mu.Lock()
	s.records = records
	s.source = result.Source
	s.mu.Unlock()

	if result.Warning != "" {
		utils.Log.Warn(result.Warning)
	}
	return result
}

// ImportBatch submits a normalized batch in a single remote call. On
// success the entire working set is replaced with the server's canonical
// batch; on failure the working set is left untouched and the error
// describes what went wrong. There is no partial merge.
func (s *Store) ImportBatch(ctx context.Context, records []lead.Record, replaceExisting bool) error {
	persisted, err := s.client.Import(ctx, records, replaceExisting)
	if err != nil {
		return fmt.Errorf("import failed, no records were changed: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	s.records = persisted
	s.source = SourceRemote
	s.mu.Unlock()
	return nil
}

// AddOne submits a single new record and prepends the server-assigned copy
// to the working set. A working set still holding the fallback sample
// dataset is discarded first: sample rows never sit next to persisted ones.
func (s *Store) AddOne(ctx context.Context, record lead.Record) error {
	persisted, err := s.client.Create(ctx, record)
	if err != nil {
		return fmt.Errorf("could not add record: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	if s.source == SourceFallback {
		s.records = nil
		s.source = SourceRemote
	}
	s.records = append([]lead.Record{persisted}, s.records...)
	s.mu.Unlock()
	return nil
}

// UpdateOne replaces the record with the given identity. Remote identities
// go through the service and adopt its response; local-only identities are
// edited in place with no network call.
func (s *Store) UpdateOne(ctx context.Context, identity lead.Identity, record lead.Record) error {
	if !identity.IsRemote() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.records {
			if s.records[i].Identity == identity {
				record.Identity = identity
				s.records[i] = record
				return nil
			}
		}
		return fmt.Errorf("no record with identity %s in the working set", identity.Key)
	}

	persisted, err := s.client.Update(ctx, identity.Key, record)
	if err != nil {
		return fmt.Errorf("could not update record %s: %w", identity.Key, err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].Identity == identity {
			s.records[i] = persisted
			return nil
		}
	}
	return fmt.Errorf("record %s was updated remotely but is gone from the working set", identity.Key)
}

// DeleteOne removes the record with the given identity, remotely when it
// has been persisted and purely locally otherwise.
func (s *Store) DeleteOne(ctx context.Context, identity lead.Identity) error {
	if identity.IsRemote() {
		if err := s.client.Delete(ctx, identity.Key); err != nil {
			return fmt.Errorf("could not delete record %s: %w", identity.Key, err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].Identity == identity {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no record with identity %s in the working set", identity.Key)
}

// Snapshot returns a copy of the working set in its current order.
func (s *Store) Snapshot() []lead.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]lead.Record, len(s.records))
	copy(out, s.records)
	return out
}

// CurrentSource reports where the working set came from.
func (s *Store) CurrentSource() Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Find returns the working-set record with the given remote id.
func (s *Store) Find(id string) (lead.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.Identity.Key == id {
			return r, true
		}
	}
	return lead.Record{}, false
}

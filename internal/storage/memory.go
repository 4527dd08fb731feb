package storage

import (
	"context"

	"github.com/goccy/go-json"
)

// MemStore is an in-memory ProfileStore for tests. It round-trips through
// JSON so it exercises the same serialization contract as the SQLite store.
type MemStore struct {
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string][]byte{}}
}

func (s *MemStore) Load(ctx context.Context) (*Profile, error) {
	raw, ok := s.data[ProfileKey]
	if !ok {
		return nil, nil
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, nil
	}
	p.Normalize()
	return &p, nil
}

func (s *MemStore) Save(ctx context.Context, p *Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	s.data[ProfileKey] = raw
	return nil
}

func (s *MemStore) Clear(ctx context.Context) error {
	delete(s.data, ProfileKey)
	return nil
}

// Corrupt overwrites the stored record with bytes that do not parse.
// Test helper for the corruption-equals-absence contract.
func (s *MemStore) Corrupt() {
	s.data[ProfileKey] = []byte("{not json")
}

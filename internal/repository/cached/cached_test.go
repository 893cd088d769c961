package cached

import (
	"context"
	"sync"
	"time"

	"github.com/wheelshare/carpool-api/cache"
)

// recordingStore is an in-memory cache.Store that keeps every call so tests
// can assert exactly which keys and patterns the decorators touched.
type recordingStore struct {
	mu       sync.Mutex
	data     map[string][]byte
	getCalls []string
	setCalls []string
	delCalls []string
}

func newRecordingStore() *recordingStore {
	return &recordingStore{data: make(map[string][]byte)}
}

func (s *recordingStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls = append(s.getCalls, key)
	return s.data[key], nil
}

func (s *recordingStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCalls = append(s.setCalls, key)
	s.data[key] = value
	return nil
}

func (s *recordingStore) DeleteByPattern(_ context.Context, pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delCalls = append(s.delCalls, pattern)
	return nil
}

func (s *recordingStore) patterns() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.delCalls))
	copy(out, s.delCalls)
	return out
}

func (s *recordingStore) calls() (gets, sets, dels int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.getCalls), len(s.setCalls), len(s.delCalls)
}

func testConfig() cache.Config {
	cfg := cache.DefaultConfig()
	cfg.KeyPrefix = "test:"
	return cfg
}

func disabledConfig() cache.Config {
	cfg := testConfig()
	cfg.Enabled = false
	return cfg
}

package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"IsletmeBulucu/models"
)

// ErrNotFound is returned by stores for a missing document.
var ErrNotFound = errors.New("not found")

// HistoryStore keeps search history items per client, newest first.
type HistoryStore interface {
	AddHistory(ctx context.Context, clientID string, item models.SearchHistoryItem) error
	ListHistory(ctx context.Context, clientID string) ([]models.SearchHistoryItem, error)
	GetHistory(ctx context.Context, clientID, id string) (*models.SearchHistoryItem, error)
	DeleteHistory(ctx context.Context, clientID, id string) error
}

// ResultStore keeps the businesses found by one search.
type ResultStore interface {
	SaveResults(ctx context.Context, clientID, searchID string, results []models.Business) error
	GetResults(ctx context.Context, clientID, searchID string) ([]models.Business, error)
	DeleteResults(ctx context.Context, clientID, searchID string) error
}

// SettingsStore keeps one settings document per client.
type SettingsStore interface {
	GetSettings(ctx context.Context, clientID string) (*models.Settings, error)
	SaveSettings(ctx context.Context, clientID string, settings models.Settings) error
}

// MemoryStore implements every store in process memory. It backs the API when
// Firestore is not configured.
type MemoryStore struct {
	mu       sync.RWMutex
	history  map[string]map[string]models.SearchHistoryItem
	results  map[string]map[string][]models.Business
	settings map[string]models.Settings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		history:  make(map[string]map[string]models.SearchHistoryItem),
		results:  make(map[string]map[string][]models.Business),
		settings: make(map[string]models.Settings),
	}
}

func (m *MemoryStore) AddHistory(_ context.Context, clientID string, item models.SearchHistoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.history[clientID] == nil {
		m.history[clientID] = make(map[string]models.SearchHistoryItem)
	}
	m.history[clientID][item.ID] = item
	return nil
}

func (m *MemoryStore) ListHistory(_ context.Context, clientID string) ([]models.SearchHistoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]models.SearchHistoryItem, 0, len(m.history[clientID]))
	for _, item := range m.history[clientID] {
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items, nil
}

func (m *MemoryStore) GetHistory(_ context.Context, clientID, id string) (*models.SearchHistoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.history[clientID][id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (m *MemoryStore) DeleteHistory(_ context.Context, clientID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.history[clientID], id)
	return nil
}

func (m *MemoryStore) SaveResults(_ context.Context, clientID, searchID string, results []models.Business) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.results[clientID] == nil {
		m.results[clientID] = make(map[string][]models.Business)
	}
	m.results[clientID][searchID] = append([]models.Business(nil), results...)
	return nil
}

func (m *MemoryStore) GetResults(_ context.Context, clientID, searchID string) ([]models.Business, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results, ok := m.results[clientID][searchID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]models.Business(nil), results...), nil
}

func (m *MemoryStore) DeleteResults(_ context.Context, clientID, searchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.results[clientID], searchID)
	return nil
}

func (m *MemoryStore) GetSettings(_ context.Context, clientID string) (*models.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.settings[clientID]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) SaveSettings(_ context.Context, clientID string, settings models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[clientID] = settings
	return nil
}

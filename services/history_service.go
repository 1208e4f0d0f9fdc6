package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"IsletmeBulucu/models"
	"IsletmeBulucu/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	allNeighborhoodsLabel = "Tüm Mahalleler"
	allSubCategoriesLabel = "Tüm Alt Kategoriler"
)

type HistoryService struct {
	History HistoryStore
	Results ResultStore
	Limit   int
	Logger  *zap.Logger
	now     func() time.Time
}

func NewHistoryService(history HistoryStore, results ResultStore, limit int, logger *zap.Logger) *HistoryService {
	if limit <= 0 {
		limit = 10
	}
	return &HistoryService{
		History: history,
		Results: results,
		Limit:   limit,
		Logger:  logger,
		now:     time.Now,
	}
}

// NewHistoryItem describes a finished search of sel.
func NewHistoryItem(sel *models.Selection, resultCount int, at time.Time) models.SearchHistoryItem {
	item := models.SearchHistoryItem{
		ID:                uuid.NewString(),
		Province:          sel.Province.Value,
		District:          sel.District.Value,
		Neighborhoods:     optionValues(sel.Neighborhoods),
		MainCategory:      sel.MainCategory.Value,
		SubCategories:     optionValues(sel.SubCategories),
		ProvinceLabel:     sel.Province.Label,
		DistrictLabel:     sel.District.Label,
		NeighborhoodLabel: joinLabels(sel.Neighborhoods, allNeighborhoodsLabel),
		MainCategoryLabel: sel.MainCategory.Label,
		SubCategoryLabel:  joinLabels(sel.SubCategories, sel.MainCategory.Label+" ("+allSubCategoriesLabel+")"),
		ResultCount:       resultCount,
		Timestamp:         at.UTC(),
	}
	return item
}

// selectionKey identifies the selection an item was made for, ignoring order.
func selectionKey(item models.SearchHistoryItem) string {
	return strings.Join([]string{
		item.Province,
		item.District,
		strings.Join(sortedCopy(item.Neighborhoods), ","),
		item.MainCategory,
		strings.Join(sortedCopy(item.SubCategories), ","),
	}, "|")
}

// Record stores a finished search and its results. An older entry for the same
// selection is replaced, and the oldest entries beyond the limit are evicted
// together with their results.
func (s *HistoryService) Record(ctx context.Context, clientID string, item models.SearchHistoryItem, results []models.Business) error {
	if item.Timestamp.IsZero() {
		item.Timestamp = s.now().UTC()
	}
	if err := s.Results.SaveResults(ctx, clientID, item.ID, results); err != nil {
		return err
	}
	if err := s.History.AddHistory(ctx, clientID, item); err != nil {
		if delErr := s.Results.DeleteResults(ctx, clientID, item.ID); delErr != nil {
			s.Logger.Error("Failed to delete orphaned results", zap.String("id", item.ID), zap.Error(delErr))
		}
		return err
	}

	items, err := s.History.ListHistory(ctx, clientID)
	if err != nil {
		return err
	}

	key := selectionKey(item)
	kept := 0
	for _, existing := range items {
		if existing.ID == item.ID {
			kept++
			continue
		}
		if selectionKey(existing) == key || kept >= s.Limit {
			if err := s.remove(ctx, clientID, existing.ID); err != nil {
				return err
			}
			continue
		}
		kept++
	}
	return nil
}

func (s *HistoryService) List(ctx context.Context, clientID string) ([]models.SearchHistoryItem, error) {
	items, err := s.History.ListHistory(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(items) > s.Limit {
		items = items[:s.Limit]
	}
	if items == nil {
		items = []models.SearchHistoryItem{}
	}
	return items, nil
}

func (s *HistoryService) Get(ctx context.Context, clientID, id string) (*models.HistoryDetail, error) {
	item, err := s.History.GetHistory(ctx, clientID, id)
	if errors.Is(err, ErrNotFound) {
		return nil, utils.NotFound("History item not found")
	}
	if err != nil {
		return nil, err
	}

	results, err := s.Results.GetResults(ctx, clientID, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if results == nil {
		results = []models.Business{}
	}
	return &models.HistoryDetail{Item: *item, Results: results}, nil
}

func (s *HistoryService) Delete(ctx context.Context, clientID, id string) error {
	if _, err := s.History.GetHistory(ctx, clientID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return utils.NotFound("History item not found")
		}
		return err
	}
	return s.remove(ctx, clientID, id)
}

// Clear removes every history item of the client and returns how many were
// removed.
func (s *HistoryService) Clear(ctx context.Context, clientID string) (int, error) {
	items, err := s.History.ListHistory(ctx, clientID)
	if err != nil {
		return 0, err
	}
	for _, item := range items {
		if err := s.remove(ctx, clientID, item.ID); err != nil {
			return 0, err
		}
	}
	s.Logger.Info("History cleared", zap.String("client", clientID), zap.Int("items", len(items)))
	return len(items), nil
}

func (s *HistoryService) remove(ctx context.Context, clientID, id string) error {
	if err := s.Results.DeleteResults(ctx, clientID, id); err != nil {
		return fmt.Errorf("delete results of %s: %w", id, err)
	}
	return s.History.DeleteHistory(ctx, clientID, id)
}

func optionValues(options []models.Option) []string {
	values := make([]string, 0, len(options))
	for _, o := range options {
		values = append(values, o.Value)
	}
	return values
}

func joinLabels(options []models.Option, empty string) string {
	if len(options) == 0 {
		return empty
	}
	labels := make([]string, 0, len(options))
	for _, o := range options {
		labels = append(labels, o.Label)
	}
	return strings.Join(labels, ", ")
}

func sortedCopy(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}

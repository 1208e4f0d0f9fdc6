package services

import (
	"context"
	"fmt"

	"IsletmeBulucu/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/genproto/googleapis/type/latlng"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore allows at most 500 writes per batch.
const firestoreBatchSize = 500

// FirestoreStore keeps history, results and settings under
// clients/{clientID}.
type FirestoreStore struct {
	FirestoreClient *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{FirestoreClient: client}
}

func (s *FirestoreStore) client(clientID string) *firestore.DocumentRef {
	return s.FirestoreClient.Collection("clients").Doc(clientID)
}

func (s *FirestoreStore) AddHistory(ctx context.Context, clientID string, item models.SearchHistoryItem) error {
	_, err := s.client(clientID).Collection("history").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return fmt.Errorf("save history item: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListHistory(ctx context.Context, clientID string) ([]models.SearchHistoryItem, error) {
	iter := s.client(clientID).Collection("history").OrderBy("timestamp", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var items []models.SearchHistoryItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list history: %w", err)
		}
		var item models.SearchHistoryItem
		if err := doc.DataTo(&item); err != nil {
			return nil, err
		}
		item.ID = doc.Ref.ID
		items = append(items, item)
	}
	return items, nil
}

func (s *FirestoreStore) GetHistory(ctx context.Context, clientID, id string) (*models.SearchHistoryItem, error) {
	doc, err := s.client(clientID).Collection("history").Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get history item: %w", err)
	}
	var item models.SearchHistoryItem
	if err := doc.DataTo(&item); err != nil {
		return nil, err
	}
	item.ID = doc.Ref.ID
	return &item, nil
}

func (s *FirestoreStore) DeleteHistory(ctx context.Context, clientID, id string) error {
	_, err := s.client(clientID).Collection("history").Doc(id).Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("delete history item: %w", err)
	}
	return nil
}

func (s *FirestoreStore) results(clientID, searchID string) *firestore.CollectionRef {
	return s.client(clientID).Collection("history").Doc(searchID).Collection("businesses")
}

// SaveResults writes businesses in batches, keeping their order. Businesses
// with valid coordinates also get a GeoPoint and a geohash.
func (s *FirestoreStore) SaveResults(ctx context.Context, clientID, searchID string, results []models.Business) error {
	col := s.results(clientID, searchID)

	for start := 0; start < len(results); start += firestoreBatchSize {
		end := start + firestoreBatchSize
		if end > len(results) {
			end = len(results)
		}

		batch := s.FirestoreClient.Batch()
		for i := start; i < end; i++ {
			b := results[i]
			data := map[string]interface{}{
				"order":          i,
				"businessName":   b.BusinessName,
				"mainCategory":   b.MainCategory,
				"subCategory":    b.SubCategory,
				"phone":          b.Phone,
				"district":       b.District,
				"neighborhood":   b.Neighborhood,
				"address":        b.Address,
				"googleRating":   b.GoogleRating,
				"googleMapsLink": b.GoogleMapsLink,
				"googlePlaceId":  b.GooglePlaceID,
				"coordinates":    b.Coordinates,
			}
			if b.Coordinates != nil {
				if loc, ok := ParseCoordinates(*b.Coordinates); ok {
					data["location"] = &latlng.LatLng{Latitude: loc.Latitude, Longitude: loc.Longitude}
					data["geohash"] = GeoHash(loc)
				}
			}
			batch.Set(col.Doc(fmt.Sprintf("%05d", i)), data)
		}

		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
	}
	return nil
}

func (s *FirestoreStore) GetResults(ctx context.Context, clientID, searchID string) ([]models.Business, error) {
	iter := s.results(clientID, searchID).OrderBy("order", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var results []models.Business
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("get results: %w", err)
		}
		var b models.Business
		if err := doc.DataTo(&b); err != nil {
			return nil, err
		}
		results = append(results, b)
	}
	return results, nil
}

func (s *FirestoreStore) DeleteResults(ctx context.Context, clientID, searchID string) error {
	refs, err := s.results(clientID, searchID).DocumentRefs(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("list results: %w", err)
	}

	for start := 0; start < len(refs); start += firestoreBatchSize {
		end := start + firestoreBatchSize
		if end > len(refs) {
			end = len(refs)
		}
		batch := s.FirestoreClient.Batch()
		for _, ref := range refs[start:end] {
			batch.Delete(ref)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("delete results: %w", err)
		}
	}
	return nil
}

func (s *FirestoreStore) GetSettings(ctx context.Context, clientID string) (*models.Settings, error) {
	doc, err := s.client(clientID).Collection("settings").Doc("preferences").Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	var settings models.Settings
	if err := doc.DataTo(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *FirestoreStore) SaveSettings(ctx context.Context, clientID string, settings models.Settings) error {
	_, err := s.client(clientID).Collection("settings").Doc("preferences").Set(ctx, settings)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

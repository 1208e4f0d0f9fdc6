package models

// Business is one listing returned by the model.
type Business struct {
	BusinessName   string   `json:"businessName" firestore:"businessName"`
	MainCategory   string   `json:"mainCategory" firestore:"mainCategory"`
	SubCategory    string   `json:"subCategory" firestore:"subCategory"`
	Phone          *string  `json:"phone" firestore:"phone"`
	District       string   `json:"district" firestore:"district"`
	Neighborhood   string   `json:"neighborhood" firestore:"neighborhood"`
	Address        string   `json:"address" firestore:"address"`
	GoogleRating   *float64 `json:"googleRating" firestore:"googleRating"`
	GoogleMapsLink string   `json:"googleMapsLink" firestore:"googleMapsLink"`
	GooglePlaceID  *string  `json:"googlePlaceId" firestore:"googlePlaceId"`
	Coordinates    *string  `json:"coordinates" firestore:"coordinates"`
}

// GeoLocation is a parsed "lat,lng" coordinate pair.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

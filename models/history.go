package models

import "time"

// SearchHistoryItem is a past search of one client.
type SearchHistoryItem struct {
	ID                string    `json:"id" firestore:"id"`
	Province          string    `json:"province" firestore:"province"`
	District          string    `json:"district" firestore:"district"`
	Neighborhoods     []string  `json:"neighborhoods" firestore:"neighborhoods"`
	MainCategory      string    `json:"mainCategory" firestore:"mainCategory"`
	SubCategories     []string  `json:"subCategories" firestore:"subCategories"`
	ProvinceLabel     string    `json:"provinceLabel" firestore:"provinceLabel"`
	DistrictLabel     string    `json:"districtLabel" firestore:"districtLabel"`
	NeighborhoodLabel string    `json:"neighborhoodLabel" firestore:"neighborhoodLabel"`
	MainCategoryLabel string    `json:"mainCategoryLabel" firestore:"mainCategoryLabel"`
	SubCategoryLabel  string    `json:"subCategoryLabel" firestore:"subCategoryLabel"`
	ResultCount       int       `json:"resultCount" firestore:"resultCount"`
	Timestamp         time.Time `json:"timestamp" firestore:"timestamp"`
}

// HistoryDetail is a history item with the businesses it found.
type HistoryDetail struct {
	Item    SearchHistoryItem `json:"item"`
	Results []Business        `json:"results"`
}

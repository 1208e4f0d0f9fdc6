package models

// SearchRequest is the user's selection. Empty neighborhood or subcategory
// lists widen the search to the whole district or main category.
type SearchRequest struct {
	Province      string   `json:"province" binding:"required"`
	District      string   `json:"district" binding:"required"`
	Neighborhoods []string `json:"neighborhoods"`
	MainCategory  string   `json:"mainCategory" binding:"required"`
	SubCategories []string `json:"subCategories"`
}

// Selection is a validated SearchRequest with its display labels.
type Selection struct {
	Province      Option
	District      Option
	Neighborhoods []Option
	MainCategory  Option
	SubCategories []Option
}

// Query is one neighborhood/subcategory combination sent to the model. A zero
// Neighborhood or SubCategory means "all".
type Query struct {
	Province     Option
	District     Option
	Neighborhood Option
	MainCategory Option
	SubCategory  Option
}

// Progress is reported after every query of a search.
type Progress struct {
	Index        int    `json:"index"`
	Total        int    `json:"total"`
	Neighborhood string `json:"neighborhood"`
	SubCategory  string `json:"subCategory"`
	Found        int    `json:"found"`
	Accumulated  int    `json:"accumulated"`
}

// QueryFailure describes a query the model could not answer.
type QueryFailure struct {
	Index        int    `json:"index"`
	Neighborhood string `json:"neighborhood"`
	SubCategory  string `json:"subCategory"`
	Message      string `json:"message"`
}

// SearchSummary closes a search stream.
type SearchSummary struct {
	HistoryID     string `json:"historyId,omitempty"`
	Total         int    `json:"total"`
	Queries       int    `json:"queries"`
	Failed        int    `json:"failed"`
	SkippedLines  int    `json:"skippedLines"`
	Aborted       bool   `json:"aborted"`
	QuotaExceeded bool   `json:"quotaExceeded"`
}

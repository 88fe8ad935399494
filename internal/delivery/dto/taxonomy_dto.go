package dto

// TaxonomyEntry is a single code/label pair. Listing order is the taxonomy's
// declaration order.
type TaxonomyEntry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type TaxonomyListResponse struct {
	Entries []TaxonomyEntry `json:"entries"`
	Total   int             `json:"total"`
}

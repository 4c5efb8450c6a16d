package domain

// SearchResults is a snapshot of one basic search. TotalResults always equals
// len(Results); Timestamp is the Unix time the snapshot was assembled.
type SearchResults struct {
	URL          string            `json:"url"`
	Domain       string            `json:"domain"`
	Params       map[string]string `json:"params"`
	Results      []SearchReference `json:"results"`
	TotalResults int               `json:"total_results"`
	Timestamp    int64             `json:"timestamp"`
}

// AdvancedSearchResults is the advanced-search counterpart: every result is a
// fully parsed article. TotalResults is the count of successfully parsed
// articles, not the number of fetches attempted.
type AdvancedSearchResults struct {
	URL          string            `json:"url"`
	Domain       string            `json:"domain"`
	Params       map[string]string `json:"params"`
	Results      []Article         `json:"results"`
	TotalResults int               `json:"total_results"`
	Timestamp    int64             `json:"timestamp"`
}

// Homepage is a structured snapshot of the front page.
type Homepage struct {
	URL          string            `json:"url"`
	Domain       string            `json:"domain"`
	Results      []SearchReference `json:"results"`
	TotalResults int               `json:"total_results"`
	Timestamp    int64             `json:"timestamp"`
}

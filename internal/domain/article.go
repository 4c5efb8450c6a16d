package domain

import "time"

// SearchReference is a lightweight pointer to an article discovered on a
// listing page: the headline, its link and the teaser shown next to it.
type SearchReference struct {
	Title   string `json:"title" bson:"title"`
	URL     string `json:"url" bson:"url"`
	Summary string `json:"summary" bson:"summary"`
}

// Article is a fully parsed article page. Title and Content are always
// populated; Author and PublishedAt depend on the page template.
type Article struct {
	URL         string    `json:"url" bson:"url"`
	Title       string    `json:"title" bson:"title"`
	Summary     string    `json:"summary" bson:"summary"`
	Content     string    `json:"content" bson:"content"`
	Author      string    `json:"author,omitempty" bson:"author,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty" bson:"published_at,omitempty"`
}

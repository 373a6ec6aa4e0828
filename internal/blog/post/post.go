package post

import (
	"time"

	"github.com/hmtran/inkpost/internal/blog/author"
)

// Post is a published blog entry.
//
// The creation date is set once on insert and never updated; listings
// depend on it for their ordering contract.
type Post struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Excerpt  string  `json:"excerpt"`
	Slug     string  `json:"slug"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
	AuthorID int64   `json:"author_id"`

	// Author is populated on detail queries.
	Author *author.Author `json:"author,omitempty"`

	CreatedAt time.Time `json:"date"`
}

package comment

import "time"

// Comment is visitor feedback attached to a post.
//
// Comments are created through the public form, never updated, and only
// removed administratively.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Input carries a submitted comment form.
//
// The JSON names match the form field names of the HTML template layer.
type Input struct {
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Text      string `json:"text"`
}

package comment

import "context"

// Repository is the data-access contract for comments.
//
// ListForPost orders by creation time ascending, id ascending — oldest
// comment first, stable for comments created within the same timestamp.
type Repository interface {
	ListForPost(context context.Context, postID int64) ([]*Comment, error)
	CountForPost(context context.Context, postID int64) (int, error)
	CreateComment(context context.Context, comment *Comment) (*Comment, error)
	DeleteComment(context context.Context, id int64) error
}

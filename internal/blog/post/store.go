package post

import "context"

// Repository is the data-access contract for posts.
//
// ListPosts orders by creation date descending, id descending as the
// deterministic tiebreak. A limit <= 0 returns all posts.
// ListPostsByIDs returns matches in unspecified order; callers restore
// the order they need.
type Repository interface {
	ListPosts(context context.Context, limit int) ([]*Post, error)
	ListPostsByIDs(context context.Context, ids []int64) ([]*Post, error)
	GetPostBySlug(context context.Context, slug string) (*Post, error)
	GetPostByID(context context.Context, id int64) (*Post, error)
	CreatePost(context context.Context, post *Post, tagIDs []int64) (*Post, error)
	DeletePostBySlug(context context.Context, slug string) error
}

package tag

import "context"

type Repository interface {
	ListTags(context context.Context) ([]*Tag, error)
	TagsForPost(context context.Context, postID int64) ([]*Tag, error)
	CreateTag(context context.Context, caption string) (*Tag, error)
}

package author

import "context"

type Repository interface {
	ListAuthors(context context.Context) ([]*Author, error)
	GetAuthorByID(context context.Context, id int64) (*Author, error)
	CreateAuthor(context context.Context, author *Author) (*Author, error)
}

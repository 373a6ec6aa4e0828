package post

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hmtran/inkpost/internal/blog/author"
	"github.com/hmtran/inkpost/internal/platform/database/schema"
	"github.com/hmtran/inkpost/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// postColumns lists the post columns selected by every query, prefixed with p.
func postColumns() string {
	return fmt.Sprintf("p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s",
		schema.BlogPost.ID, schema.BlogPost.Title, schema.BlogPost.Excerpt, schema.BlogPost.Slug,
		schema.BlogPost.Content, schema.BlogPost.ImageURL, schema.BlogPost.AuthorID, schema.BlogPost.CreatedAt)
}

func scanPost(row pgx.Row) (*Post, error) {
	p := &Post{}
	err := row.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Slug, &p.Content, &p.ImageURL, &p.AuthorID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) ListPosts(context context.Context, limit int) ([]*Post, error) {
	// createdat DESC with id DESC as tiebreak keeps the ordering deterministic
	// for posts inserted within the same timestamp.
	query := fmt.Sprintf(`SELECT %s FROM %s p ORDER BY p.%s DESC, p.%s DESC`,
		postColumns(), schema.BlogPost.Table, schema.BlogPost.CreatedAt, schema.BlogPost.ID)

	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	posts := make([]*Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, p)
	}

	return posts, nil
}

func (repository *PostgresRepository) ListPostsByIDs(context context.Context, ids []int64) ([]*Post, error) {
	if len(ids) == 0 {
		return []*Post{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s p WHERE p.%s = ANY($1)`,
		postColumns(), schema.BlogPost.Table, schema.BlogPost.ID)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "list_posts_by_ids")
	}
	defer rows.Close()

	posts := make([]*Post, 0, len(ids))
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, p)
	}

	return posts, nil
}

func (repository *PostgresRepository) GetPostBySlug(context context.Context, slug string) (*Post, error) {
	query := fmt.Sprintf(`
		SELECT %s, a.%s, a.%s, a.%s, a.%s
		FROM %s p
		JOIN %s a ON p.%s = a.%s
		WHERE p.%s = $1
	`,
		postColumns(),
		schema.BlogAuthor.ID, schema.BlogAuthor.FirstName, schema.BlogAuthor.LastName, schema.BlogAuthor.Email,
		schema.BlogPost.Table, schema.BlogAuthor.Table,
		schema.BlogPost.AuthorID, schema.BlogAuthor.ID, schema.BlogPost.Slug,
	)

	p := &Post{}
	a := &author.Author{}

	err := repository.db.QueryRow(context, query, slug).Scan(
		&p.ID, &p.Title, &p.Excerpt, &p.Slug, &p.Content, &p.ImageURL, &p.AuthorID, &p.CreatedAt,
		&a.ID, &a.FirstName, &a.LastName, &a.Email,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_post_by_slug")
	}

	p.Author = a
	return p, nil
}

func (repository *PostgresRepository) GetPostByID(context context.Context, id int64) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s p WHERE p.%s = $1`,
		postColumns(), schema.BlogPost.Table, schema.BlogPost.ID)

	p, err := scanPost(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_post_by_id")
	}

	return p, nil
}

func (repository *PostgresRepository) CreatePost(context context.Context, post *Post, tagIDs []int64) (*Post, error) {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, "begin_create_post")
	}
	defer func() { _ = transaction.Rollback(context) }()

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s
	`,
		schema.BlogPost.Table,
		schema.BlogPost.Title, schema.BlogPost.Excerpt, schema.BlogPost.Slug,
		schema.BlogPost.Content, schema.BlogPost.ImageURL, schema.BlogPost.AuthorID,
		schema.BlogPost.ID, schema.BlogPost.CreatedAt,
	)

	err = transaction.QueryRow(context, insertQuery,
		post.Title, post.Excerpt, post.Slug, post.Content, post.ImageURL, post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "insert_post")
	}

	tagQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.BlogPostTag.Table, schema.BlogPostTag.PostID, schema.BlogPostTag.TagID)

	for _, tagID := range tagIDs {
		if _, err := transaction.Exec(context, tagQuery, post.ID, tagID); err != nil {
			return nil, dberr.Wrap(err, "attach_post_tag")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return nil, dberr.Wrap(err, "commit_create_post")
	}

	return post, nil
}

func (repository *PostgresRepository) DeletePostBySlug(context context.Context, slug string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BlogPost.Table, schema.BlogPost.Slug)

	result, err := repository.db.Exec(context, query, slug)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hmtran/inkpost/internal/platform/database/schema"
	"github.com/hmtran/inkpost/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTags(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.BlogTag.ID, schema.BlogTag.Caption, schema.BlogTag.Table, schema.BlogTag.Caption)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Caption); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, nil
}

func (repository *PostgresRepository) TagsForPost(context context.Context, postID int64) ([]*Tag, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s
		FROM %s t
		JOIN %s pt ON pt.%s = t.%s
		WHERE pt.%s = $1
		ORDER BY t.%s ASC
	`,
		schema.BlogTag.ID, schema.BlogTag.Caption,
		schema.BlogTag.Table, schema.BlogPostTag.Table,
		schema.BlogPostTag.TagID, schema.BlogTag.ID,
		schema.BlogPostTag.PostID, schema.BlogTag.Caption,
	)

	rows, err := repository.db.Query(context, query, postID)
	if err != nil {
		return nil, dberr.Wrap(err, "tags_for_post")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Caption); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, nil
}

func (repository *PostgresRepository) CreateTag(context context.Context, caption string) (*Tag, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.BlogTag.Table, schema.BlogTag.Caption, schema.BlogTag.ID)

	t := &Tag{Caption: caption}
	if err := repository.db.QueryRow(context, query, caption).Scan(&t.ID); err != nil {
		return nil, dberr.Wrap(err, "create_tag")
	}

	return t, nil
}

package comment

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

func (repository *PostgresRepository) ListForPost(context context.Context, postID int64) ([]*Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC
	`,
		schema.BlogComment.ID, schema.BlogComment.PostID, schema.BlogComment.UserName,
		schema.BlogComment.UserEmail, schema.BlogComment.Body, schema.BlogComment.CreatedAt,
		schema.BlogComment.Table, schema.BlogComment.PostID,
		schema.BlogComment.CreatedAt, schema.BlogComment.ID,
	)

	rows, err := repository.db.Query(context, query, postID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserName, &c.UserEmail, &c.Text, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, nil
}

func (repository *PostgresRepository) CountForPost(context context.Context, postID int64) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.BlogComment.Table, schema.BlogComment.PostID)

	var total int
	if err := repository.db.QueryRow(context, query, postID).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_comments")
	}

	return total, nil
}

func (repository *PostgresRepository) CreateComment(context context.Context, comment *Comment) (*Comment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.BlogComment.Table,
		schema.BlogComment.PostID, schema.BlogComment.UserName,
		schema.BlogComment.UserEmail, schema.BlogComment.Body,
		schema.BlogComment.ID, schema.BlogComment.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		comment.PostID, comment.UserName, comment.UserEmail, comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "create_comment")
	}

	return comment, nil
}

func (repository *PostgresRepository) DeleteComment(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.BlogComment.Table, schema.BlogComment.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

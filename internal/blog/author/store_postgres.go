package author

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

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC, %s ASC`,
		schema.BlogAuthor.ID, schema.BlogAuthor.FirstName, schema.BlogAuthor.LastName, schema.BlogAuthor.Email,
		schema.BlogAuthor.Table, schema.BlogAuthor.LastName, schema.BlogAuthor.FirstName)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	authors := make([]*Author, 0)
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, nil
}

func (repository *PostgresRepository) GetAuthorByID(context context.Context, id int64) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.BlogAuthor.ID, schema.BlogAuthor.FirstName, schema.BlogAuthor.LastName, schema.BlogAuthor.Email,
		schema.BlogAuthor.Table, schema.BlogAuthor.ID)

	a := &Author{}
	err := repository.db.QueryRow(context, query, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email)
	if err != nil {
		return nil, dberr.Wrap(err, "get_author_by_id")
	}

	return a, nil
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, author *Author) (*Author, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.BlogAuthor.Table,
		schema.BlogAuthor.FirstName, schema.BlogAuthor.LastName, schema.BlogAuthor.Email,
		schema.BlogAuthor.ID)

	err := repository.db.QueryRow(context, query, author.FirstName, author.LastName, author.Email).Scan(&author.ID)
	if err != nil {
		return nil, dberr.Wrap(err, "create_author")
	}

	return author, nil
}

// Package card implements the catalog repository using PostgreSQL.
package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

const table = "cards"

var columns = []string{"id", "code", "title", "description", "image_url", "created_at", "updated_at"}

type row struct {
	ID          uuid.UUID `db:"id"`
	Code        string    `db:"code"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	ImageURL    *string   `db:"image_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Card {
	return domain.Card{
		ID:          r.ID,
		Code:        r.Code,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides read access to the catalog and bulk seeding.
type Repo struct {
	db postgres.DB
}

// New creates a new card repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// List returns catalog cards matching filter, in storage order.
func (r *Repo) List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at", "code")

	if filter.Code != nil {
		query = query.Where(squirrel.Eq{"code": *filter.Code})
	}
	if filter.Search != nil && *filter.Search != "" {
		query = query.Where(squirrel.ILike{"title": "%" + escapeLike(*filter.Search) + "%"})
	}

	return r.list(ctx, query)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern. Backslash is the
// default LIKE escape character.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ListAll returns the whole catalog.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Card, error) {
	return r.List(ctx, domain.CardFilter{})
}

// BulkInsert inserts cards, skipping codes that already exist.
// Returns the number of inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, cards []domain.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Suffix("ON CONFLICT (code) DO NOTHING")

	for _, c := range cards {
		query = query.Values(c.ID, c.Code, c.Title, c.Description, c.ImageURL, c.CreatedAt, c.UpdatedAt)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build card insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "card", fmt.Sprintf("batch of %d", len(cards)))
	}

	return int(tag.RowsAffected()), nil
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Card, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build card query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "card", "list")
	}

	cards := make([]domain.Card, len(rows))
	for i, rw := range rows {
		cards[i] = rw.toDomain()
	}
	return cards, nil
}

// Package usercard implements the assignment repository using PostgreSQL.
package usercard

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/signdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/signdeck-backend/internal/domain"
)

var (
	columns = []string{"id", "user_id", "card_id", "status", "comment", "signed_at", "created_at", "updated_at"}

	joinedColumns = []string{
		"uc.id", "uc.user_id", "uc.card_id", "uc.status", "uc.comment", "uc.signed_at", "uc.created_at", "uc.updated_at",
		"c.code AS card_code",
		"c.title AS card_title",
		"c.description AS card_description",
		"c.image_url AS card_image_url",
		"c.created_at AS card_created_at",
		"c.updated_at AS card_updated_at",
	}
)

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	CardID    uuid.UUID  `db:"card_id"`
	Status    string     `db:"status"`
	Comment   *string    `db:"comment"`
	SignedAt  *time.Time `db:"signed_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

type joinedRow struct {
	row
	CardCode        string    `db:"card_code"`
	CardTitle       string    `db:"card_title"`
	CardDescription *string   `db:"card_description"`
	CardImageURL    *string   `db:"card_image_url"`
	CardCreatedAt   time.Time `db:"card_created_at"`
	CardUpdatedAt   time.Time `db:"card_updated_at"`
}

func (r row) toDomain() domain.UserCard {
	return domain.UserCard{
		ID:        r.ID,
		UserID:    r.UserID,
		CardID:    r.CardID,
		Status:    domain.CardStatus(r.Status),
		Comment:   r.Comment,
		SignedAt:  r.SignedAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r joinedRow) toDomain() domain.UserCard {
	uc := r.row.toDomain()
	uc.Card = domain.Card{
		ID:          r.CardID,
		Code:        r.CardCode,
		Title:       r.CardTitle,
		Description: r.CardDescription,
		ImageURL:    r.CardImageURL,
		CreatedAt:   r.CardCreatedAt,
		UpdatedAt:   r.CardUpdatedAt,
	}
	return uc
}

// Repo provides persistence for user card assignments.
type Repo struct {
	db postgres.DB
}

// New creates a new user card repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// CreateForUser inserts one PENDING assignment per card in a single statement.
// Returns the number of inserted rows.
func (r *Repo) CreateForUser(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID, now time.Time) (int, error) {
	if len(cardIDs) == 0 {
		return 0, nil
	}

	query := postgres.Builder().
		Insert("user_cards").
		Columns("id", "user_id", "card_id", "status", "created_at", "updated_at")

	for _, cardID := range cardIDs {
		query = query.Values(uuid.New(), userID, cardID, string(domain.CardStatusPending), now, now)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build user card insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "user_cards of user", userID)
	}

	return int(tag.RowsAffected()), nil
}

// GetByID returns an assignment by its own id, regardless of owner.
// Card is not loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserCard, error) {
	query := postgres.Builder().
		Select(columns...).
		From("user_cards").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user card query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(postgres.ScanErr(err), "user_card", id)
	}

	uc := rw.toDomain()
	return &uc, nil
}

// GetByUserID returns the user's assignments joined with their cards.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.UserCard, error) {
	return r.listJoined(ctx, squirrel.Eq{"uc.user_id": userID}, userID)
}

// GetByUserIDs returns assignments of several users joined with their cards,
// grouped by user.
func (r *Repo) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.UserCard, error) {
	if len(userIDs) == 0 {
		return []domain.UserCard{}, nil
	}
	return r.listJoined(ctx, squirrel.Eq{"uc.user_id": userIDs}, fmt.Sprintf("%d users", len(userIDs)))
}

// Update sets the status and, when present in upd, the comment and signed-at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.UserCardUpdate) (*domain.UserCard, error) {
	query := postgres.Builder().
		Update("user_cards").
		Set("status", string(upd.Status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, user_id, card_id, status, comment, signed_at, created_at, updated_at")

	if upd.Comment.Set {
		query = query.Set("comment", upd.Comment.Value)
	}
	if upd.SignedAt.Set {
		query = query.Set("signed_at", upd.SignedAt.Value)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user card update: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(postgres.ScanErr(err), "user_card", id)
	}

	uc := rw.toDomain()
	return &uc, nil
}

func (r *Repo) listJoined(ctx context.Context, where squirrel.Sqlizer, key any) ([]domain.UserCard, error) {
	query := postgres.Builder().
		Select(joinedColumns...).
		From("user_cards uc").
		Join("cards c ON c.id = uc.card_id").
		Where(where).
		OrderBy("uc.user_id", "c.created_at", "c.code")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user card query: %w", err)
	}

	var rows []joinedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user_cards", key)
	}

	out := make([]domain.UserCard, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

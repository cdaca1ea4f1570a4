// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{"id", "name", "email", "image", "created_at", "updated_at", "deleted_at"}

type row struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Image     *string    `db:"image"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Image:     r.Image,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: r.DeletedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
// Soft-deleted users are invisible to every read.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func active() squirrel.Sqlizer {
	return squirrel.Eq{"deleted_at": nil}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		Where(active())

	return r.get(ctx, query, id)
}

// GetByEmail returns a user by email address. The caller normalizes email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email}).
		Where(active())

	return r.get(ctx, query, email)
}

// List returns all active users ordered by creation time.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(active()).
		OrderBy("created_at", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", "list")
	}

	users := make([]domain.User, len(rows))
	for i, rw := range rows {
		users[i] = *rw.toDomain()
	}
	return users, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "name", "email", "image", "created_at", "updated_at").
		Values(u.ID, u.Name, u.Email, u.Image, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + joinColumns())

	return r.get(ctx, query, u.ID)
}

// Update applies the non-nil fields of upd. An empty update only checks
// that the user exists.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error) {
	if upd.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	query := postgres.Builder().
		Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(active()).
		Suffix("RETURNING " + joinColumns())

	if upd.Name != nil {
		query = query.Set("name", *upd.Name)
	}
	if upd.Email != nil {
		query = query.Set("email", *upd.Email)
	}
	if upd.Image != nil {
		query = query.Set("image", *upd.Image)
	}

	return r.get(ctx, query, id)
}

// SoftDelete marks an active user as deleted. The user's assignments stay
// until the row is purged.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(active()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// HardDeleteOld removes users soft-deleted before threshold. Assignments go
// with them via ON DELETE CASCADE.
func (r *Repo) HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.NotEq{"deleted_at": nil}).
		Where(squirrel.Lt{"deleted_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build user query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "user", "purge")
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) get(ctx context.Context, query squirrel.Sqlizer, key any) (*domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(postgres.ScanErr(err), "user", key)
	}
	return rw.toDomain(), nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

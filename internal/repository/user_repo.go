package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"account-api/internal/domain"
)

// ErrDuplicateUsername señala una violación del índice único sobre username.
var ErrDuplicateUsername = errors.New("duplicate username")

// UserRepository define el contrato de persistencia para usuarios.
// Las búsquedas sin resultado devuelven pgx.ErrNoRows.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByID(ctx context.Context, id int64) (domain.User, error)
	Save(ctx context.Context, user domain.User) (domain.User, error)
	Flush(ctx context.Context) error
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

const userColumns = `id, username, display_name, password_hash, status, token, creation_date, birth_date`

func (r *PgUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgUserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (r *PgUserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// Save inserta cuando el usuario todavía no tiene id y actualiza en caso
// contrario. En insert el id lo asigna la base.
func (r *PgUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	var birth *time.Time
	if user.BirthDate != nil {
		t := user.BirthDate.Time()
		birth = &t
	}

	if user.ID == 0 {
		const query = `
			INSERT INTO users (username, display_name, password_hash, status, token, creation_date, birth_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		err := r.pool.QueryRow(ctx, query,
			user.Username,
			user.DisplayName,
			user.PasswordHash,
			string(user.Status),
			user.Token,
			user.CreationDate.Time(),
			birth,
		).Scan(&user.ID)
		if err != nil {
			return domain.User{}, translateErr(err)
		}
		return user, nil
	}

	const query = `
		UPDATE users
		SET username = $2, display_name = $3, password_hash = $4, status = $5, token = $6, birth_date = $7
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.DisplayName,
		user.PasswordHash,
		string(user.Status),
		user.Token,
		birth,
	)
	if err != nil {
		return domain.User{}, translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

// Flush no necesita trabajo adicional: en Postgres cada Exec queda
// durablemente visible al retornar. Se mantiene en el contrato para que la
// barrera de escritura del servicio sea explícita y sustituible en tests.
func (r *PgUserRepository) Flush(_ context.Context) error {
	return nil
}

func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateUsername
	}
	return err
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u        domain.User
		status   string
		creation time.Time
		birth    *time.Time
	)
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.DisplayName,
		&u.PasswordHash,
		&status,
		&u.Token,
		&creation,
		&birth,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Status = domain.Status(status)
	u.CreationDate = domain.DateOf(creation)
	if birth != nil {
		d := domain.DateOf(*birth)
		u.BirthDate = &d
	}
	return u, nil
}

package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"clinic-scheduler/internal/model"
)

const userCols = `id, name, email, phone, password_hash, role, specialization, license_number, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&role, &u.Specialization, &u.LicenseNumber, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = model.Role(role)
	return u, nil
}

func (s *Postgres) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, phone, password_hash, role, specialization, license_number, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, string(u.Role),
		u.Specialization, u.LicenseNumber, u.CreatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *Postgres) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (s *Postgres) UserByID(ctx context.Context, id string) (*model.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (s *Postgres) UsersByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+userCols+` FROM users WHERE role = $1 ORDER BY seq`, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (s *Postgres) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

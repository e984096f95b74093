package repositories

import (
	"context"

	"computer-aid/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash FROM admins WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	return count, err
}

func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO admins (username, password_hash) VALUES ($1, $2) RETURNING id`,
		a.Username, a.PasswordHash,
	).Scan(&a.ID)
}

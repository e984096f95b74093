package repositories

import (
	"context"
	"time"

	"computer-aid/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, name, price, description, category, image, created_at`

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()
	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Category, &p.Image, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *ProductRepository) Search(ctx context.Context, q string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
	          WHERE name ILIKE $1 OR description ILIKE $1
	          ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, "%"+q+"%")
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p models.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &p.Category, &p.Image, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `INSERT INTO products (name, price, description, category, image, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		p.Name, p.Price, p.Description, p.Category, p.Image, time.Now(),
	).Scan(&p.ID, &p.CreatedAt)
}

// Update writes every mutable column; id and created_at never change.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `UPDATE products SET name = $1, price = $2, description = $3, category = $4, image = $5
	          WHERE id = $6`
	_, err := r.db.Exec(ctx, query, p.Name, p.Price, p.Description, p.Category, p.Image, p.ID)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

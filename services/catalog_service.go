package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"computer-aid/libs"
	"computer-aid/models"
	"computer-aid/utils"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "catalog:"
	cacheTTL       = 5 * time.Minute
)

type ProductStore interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
	Search(ctx context.Context, q string) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int) error
}

type CatalogService struct {
	store  ProductStore
	images libs.ImageStore
	cache  *redis.Client
}

// NewCatalogService wires the durable store, the image store and an optional
// (nil-able) listing cache.
func NewCatalogService(store ProductStore, images libs.ImageStore, cache *redis.Client) *CatalogService {
	return &CatalogService{store: store, images: images, cache: cache}
}

func (s *CatalogService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.cachedList(ctx, cacheKeyPrefix+"home", func() ([]models.Product, error) {
		return s.store.ListAll(ctx)
	})
}

func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.cachedList(ctx, cacheKeyPrefix+"category:"+category, func() ([]models.Product, error) {
		return s.store.ListByCategory(ctx, category)
	})
}

func (s *CatalogService) Search(ctx context.Context, q string) ([]models.Product, error) {
	return s.store.Search(ctx, q)
}

func (s *CatalogService) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, err := s.store.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Create validates the input, uploads the image first and writes the row only
// after the upload succeeded, so the catalog never references an asset that
// failed to persist.
func (s *CatalogService) Create(ctx context.Context, in models.CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "Product name is required"}
	}
	price, err := utils.ParsePrice(in.Price)
	if err != nil {
		return nil, &ValidationError{Field: "price", Message: err.Error()}
	}

	image := s.images.Placeholder()
	if in.Image != nil {
		ref, err := s.images.Save(ctx, in.Image)
		if err != nil {
			return nil, &UploadError{Err: err}
		}
		image = ref
	}

	p := &models.Product{
		Name:        name,
		Price:       price,
		Description: strings.TrimSpace(in.Description),
		Category:    models.NormalizeCategory(in.Category),
		Image:       image,
	}
	if err := s.store.Create(ctx, p); err != nil {
		if image != s.images.Placeholder() {
			s.retire(ctx, image)
		}
		return nil, err
	}

	s.invalidateCache(ctx)
	return p, nil
}

// Update merges the submitted fields over the stored row. A replacement image
// is uploaded before the row write; the old file is retired only after the new
// reference is durable.
func (s *CatalogService) Update(ctx context.Context, id int, in models.UpdateProductInput) (*models.Product, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldImage := p.Image

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, &ValidationError{Field: "name", Message: "Product name is required"}
		}
		p.Name = name
	}
	if in.Price != nil {
		price, err := utils.ParsePrice(*in.Price)
		if err != nil {
			return nil, &ValidationError{Field: "price", Message: err.Error()}
		}
		p.Price = price
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		p.Category = models.NormalizeCategory(*in.Category)
	}

	replaced := false
	if in.Image != nil {
		ref, err := s.images.Save(ctx, in.Image)
		if err != nil {
			return nil, &UploadError{Err: err}
		}
		p.Image = ref
		replaced = true
	}

	if err := s.store.Update(ctx, p); err != nil {
		if replaced {
			// The new reference never became durable; the old row still
			// points at the old file.
			s.retire(ctx, p.Image)
		}
		return nil, err
	}

	if replaced && oldImage != s.images.Placeholder() {
		s.retire(ctx, oldImage)
	}

	s.invalidateCache(ctx)
	return p, nil
}

// Delete removes the row first, then retires the image so nothing ever
// references a deleted asset.
func (s *CatalogService) Delete(ctx context.Context, id int) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	if p.Image != s.images.Placeholder() {
		s.retire(ctx, p.Image)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *CatalogService) retire(ctx context.Context, ref string) {
	if err := s.images.Remove(ctx, ref); err != nil {
		log.Printf("Failed to retire image %s: %v", ref, err)
	}
}

func (s *CatalogService) cachedList(ctx context.Context, key string, fetch func() ([]models.Product, error)) ([]models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := fetch()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(products); err == nil {
			s.cache.Set(ctx, key, string(raw), cacheTTL)
		}
	}
	return products, nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, cacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		s.cache.Del(ctx, iter.Val())
	}
}

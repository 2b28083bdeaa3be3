package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNoEstablishment = errors.New("establishment id required")

const catalogCacheTTL = 5 * time.Minute

// ImageUploader is the object-storage collaborator.
type ImageUploader interface {
	Upload(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

// Snapshot is everything the POS grid needs in a single read.
type Snapshot struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
}

type Service struct {
	repo     Repository
	uploader ImageUploader
	rdb      *redis.Client
}

// NewService wires the repository with optional redis caching (rdb may be
// nil) and optional image uploads.
func NewService(repo Repository, uploader ImageUploader, rdb *redis.Client) *Service {
	return &Service{repo: repo, uploader: uploader, rdb: rdb}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

// GetSnapshot returns the active products and categories of one
// establishment, served from cache when possible. Cache failures fall
// back to the database, they never fail the request.
func (s *Service) GetSnapshot(ctx context.Context, establishmentID string) (*Snapshot, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}

	key := cacheKey(establishmentID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			log.Printf("catalog cache read failed: %v", err)
		}
		if cached != "" {
			var snap Snapshot
			if err := json.Unmarshal([]byte(cached), &snap); err == nil {
				return &snap, nil
			}
		}
	}

	products, err := s.repo.ListProducts(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Products: products, Categories: categories}

	if s.rdb != nil {
		if raw, err := json.Marshal(snap); err == nil {
			if err := s.rdb.Set(ctx, key, raw, catalogCacheTTL).Err(); err != nil {
				log.Printf("catalog cache write failed: %v", err)
			}
		}
	}

	return snap, nil
}

func (s *Service) ListProducts(ctx context.Context, establishmentID string) ([]Product, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	return s.repo.ListProducts(ctx, establishmentID)
}

func (s *Service) ListCategories(ctx context.Context, establishmentID string) ([]Category, error) {
	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	return s.repo.ListCategories(ctx, establishmentID)
}

// --------------------------------------------------
// Product writes
// --------------------------------------------------

type ProductInput struct {
	CategoryID  string
	Name        string
	Description string
	Price       float64
	SKU         string
	SortOrder   int
}

func (s *Service) CreateProduct(
	ctx context.Context,
	establishmentID string,
	in ProductInput,
) (*Product, error) {

	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("missing required fields")
	}
	if in.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}

	product := &Product{
		EstablishmentID: establishmentID,
		CategoryID:      in.CategoryID,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		SKU:             in.SKU,
		SortOrder:       in.SortOrder,
		Active:          true,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, establishmentID)
	return product, nil
}

func (s *Service) UpdateProduct(
	ctx context.Context,
	establishmentID, productID string,
	in ProductInput,
) error {

	if establishmentID == "" {
		return ErrNoEstablishment
	}
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("missing required fields")
	}
	if in.Price < 0 {
		return errors.New("price cannot be negative")
	}

	product := &Product{
		ID:              productID,
		EstablishmentID: establishmentID,
		CategoryID:      in.CategoryID,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		SKU:             in.SKU,
		SortOrder:       in.SortOrder,
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return err
	}

	s.invalidateCache(ctx, establishmentID)
	return nil
}

func (s *Service) DeleteProduct(ctx context.Context, establishmentID, productID string) error {
	if establishmentID == "" {
		return ErrNoEstablishment
	}
	if err := s.repo.DeleteProduct(ctx, establishmentID, productID); err != nil {
		return err
	}
	s.invalidateCache(ctx, establishmentID)
	return nil
}

func (s *Service) UploadProductImage(
	ctx context.Context,
	establishmentID, productID string,
	file *multipart.FileHeader,
) (string, error) {

	if establishmentID == "" {
		return "", ErrNoEstablishment
	}

	if _, err := s.repo.GetProduct(ctx, establishmentID, productID); err != nil {
		return "", err
	}

	key := "products/" + establishmentID + "/" + productID + "/" + file.Filename
	url, err := s.uploader.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateProductImage(ctx, establishmentID, productID, url); err != nil {
		return "", err
	}

	s.invalidateCache(ctx, establishmentID)
	return url, nil
}

// --------------------------------------------------
// Category writes
// --------------------------------------------------

type CategoryInput struct {
	Name        string
	Description string
	SortOrder   int
}

func (s *Service) CreateCategory(
	ctx context.Context,
	establishmentID string,
	in CategoryInput,
) (*Category, error) {

	if establishmentID == "" {
		return nil, ErrNoEstablishment
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("missing required fields")
	}

	category := &Category{
		EstablishmentID: establishmentID,
		Name:            in.Name,
		Description:     in.Description,
		SortOrder:       in.SortOrder,
		Active:          true,
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, establishmentID)
	return category, nil
}

func (s *Service) UpdateCategory(
	ctx context.Context,
	establishmentID, categoryID string,
	in CategoryInput,
) error {

	if establishmentID == "" {
		return ErrNoEstablishment
	}
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("missing required fields")
	}

	category := &Category{
		ID:              categoryID,
		EstablishmentID: establishmentID,
		Name:            in.Name,
		Description:     in.Description,
		SortOrder:       in.SortOrder,
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return err
	}

	s.invalidateCache(ctx, establishmentID)
	return nil
}

func (s *Service) DeleteCategory(ctx context.Context, establishmentID, categoryID string) error {
	if establishmentID == "" {
		return ErrNoEstablishment
	}
	if err := s.repo.DeleteCategory(ctx, establishmentID, categoryID); err != nil {
		return err
	}
	s.invalidateCache(ctx, establishmentID)
	return nil
}

// --------------------------------------------------
// cache
// --------------------------------------------------
func cacheKey(establishmentID string) string {
	return "catalog:" + establishmentID
}

func (s *Service) invalidateCache(ctx context.Context, establishmentID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKey(establishmentID)).Err(); err != nil {
		log.Printf("catalog cache invalidation failed: %v", err)
	}
}

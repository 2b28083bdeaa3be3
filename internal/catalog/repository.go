package catalog

import "context"

type Repository interface {
	// products
	ListProducts(ctx context.Context, establishmentID string) ([]Product, error)
	GetProduct(ctx context.Context, establishmentID, productID string) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) error
	// UpdateProduct writes the form fields only; the image is managed
	// separately so edits cannot clear it.
	UpdateProduct(ctx context.Context, product *Product) error
	UpdateProductImage(ctx context.Context, establishmentID, productID, imageURL string) error
	DeleteProduct(ctx context.Context, establishmentID, productID string) error

	// categories
	ListCategories(ctx context.Context, establishmentID string) ([]Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, establishmentID, categoryID string) error
}

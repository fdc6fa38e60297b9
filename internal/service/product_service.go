package service

import (
	"context"
	"math"
	"mime/multipart"
	"strings"

	"golang.org/x/sync/errgroup"

	"shopmatic/internal/cache"
	"shopmatic/internal/entity"
)

const latestProductCount = 5

type ProductService struct {
	repo    ProductRepository
	cache   cache.Store
	photos  PhotoStore
	perPage int
}

func NewProductService(repo ProductRepository, store cache.Store, photos PhotoStore, perPage int) *ProductService {
	return &ProductService{
		repo:    repo,
		cache:   store,
		photos:  photos,
		perPage: perPage,
	}
}

// NewProductParams carries the multipart form fields of the create request.
type NewProductParams struct {
	Name     string
	Price    float64
	Stock    int
	Category string
	Photo    *multipart.FileHeader
}

func (s *ProductService) Create(ctx context.Context, params NewProductParams) (*entity.Product, error) {
	if params.Photo == nil {
		return nil, entity.BadRequest("Please add the photo")
	}
	if params.Name == "" || params.Price == 0 || params.Stock == 0 || params.Category == "" {
		return nil, entity.BadRequest("Please Fill all Fields")
	}

	path, err := s.photos.Save(params.Photo)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.Create(ctx, &entity.Product{
		Name:     params.Name,
		Price:    params.Price,
		Stock:    params.Stock,
		Category: strings.ToLower(params.Category),
		Photo:    path,
	})
	if err != nil {
		s.photos.Remove(path)
		return nil, err
	}

	revalidate(ctx, s.cache, revalidateScope{products: true, admin: true})
	return product, nil
}

func (s *ProductService) Latest(ctx context.Context) ([]*entity.Product, error) {
	return readThrough(ctx, s.cache, keyLatestProducts, func() ([]*entity.Product, error) {
		return s.repo.Latest(ctx, latestProductCount)
	})
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return readThrough(ctx, s.cache, keyCategories, func() ([]string, error) {
		return s.repo.Categories(ctx)
	})
}

func (s *ProductService) AdminProducts(ctx context.Context) ([]*entity.Product, error) {
	return readThrough(ctx, s.cache, keyAdminProducts, func() ([]*entity.Product, error) {
		return s.repo.All(ctx)
	})
}

func (s *ProductService) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	product, err := readThrough(ctx, s.cache, productKey(id), func() (*entity.Product, error) {
		return s.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, entity.BadRequest("Product Not Found")
	}
	return product, nil
}

// Search runs the filtered listing. The matching page and the unpaginated
// count are fetched concurrently; the second value is the total page count.
func (s *ProductService) Search(ctx context.Context, f entity.ProductFilter) ([]*entity.Product, int, error) {
	if f.Limit <= 0 {
		f.Limit = s.perPage
	}
	if f.Page < 1 {
		f.Page = 1
	}

	var (
		products []*entity.Product
		matches  int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.repo.Find(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.repo.Count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	totalPage := int(math.Ceil(float64(matches) / float64(f.Limit)))
	return products, totalPage, nil
}

// UpdateProductParams carries the optional fields of a partial update.
// Zero values leave the stored field untouched.
type UpdateProductParams struct {
	Name     string
	Price    float64
	Stock    int
	Category string
	Photo    *multipart.FileHeader
}

func (s *ProductService) Update(ctx context.Context, id int, params UpdateProductParams) (*entity.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, entity.BadRequest("Product Not Found")
	}

	if params.Photo != nil {
		path, err := s.photos.Save(params.Photo)
		if err != nil {
			return nil, err
		}
		s.photos.Remove(product.Photo)
		product.Photo = path
	}
	if params.Name != "" {
		product.Name = params.Name
	}
	if params.Price != 0 {
		product.Price = params.Price
	}
	if params.Stock != 0 {
		product.Stock = params.Stock
	}
	if params.Category != "" {
		product.Category = strings.ToLower(params.Category)
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}

	revalidate(ctx, s.cache, revalidateScope{products: true, admin: true, productIDs: []int{id}})
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return entity.BadRequest("Product Not Found")
	}

	s.photos.Remove(product.Photo)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	revalidate(ctx, s.cache, revalidateScope{products: true, admin: true, productIDs: []int{id}})
	return nil
}

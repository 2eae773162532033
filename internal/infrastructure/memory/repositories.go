package memory

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.CompanyRepository  = (*CompanyRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.InquiryRepository  = (*InquiryRepo)(nil)
	_ repository.OrderRepository    = (*OrderRepo)(nil)
	_ repository.ReviewRepository   = (*ReviewRepo)(nil)
)

// UserRepo usuarios en memoria; email único.
type UserRepo struct{ t *table[entity.User] }

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	return r.t.insert(ctx, user.ID, user)
}
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.t.getByID(ctx, id)
}
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.t.findOne(ctx, map[string]any{"email": email})
}
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.t.replace(ctx, user.ID, user)
}
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return r.t.find(ctx, nil, limit, offset)
}
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

// CompanyRepo empresas en memoria.
type CompanyRepo struct{ t *table[entity.Company] }

func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	return r.t.insert(ctx, company.ID, company)
}
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.t.getByID(ctx, id)
}
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	return r.t.replace(ctx, company.ID, company)
}
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	return r.t.find(ctx, nil, limit, offset)
}

// CategoryRepo categorías en memoria; slug no único.
type CategoryRepo struct{ t *table[entity.Category] }

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return r.t.insert(ctx, category.ID, category)
}
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.t.getByID(ctx, id)
}
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return r.t.findOne(ctx, map[string]any{"slug": slug})
}
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return r.t.replace(ctx, category.ID, category)
}
func (r *CategoryRepo) ListByParent(ctx context.Context, parentID *string) ([]*entity.Category, error) {
	return r.t.find(ctx, map[string]any{"parent_id": parentID}, 0, 0)
}

// ProductRepo productos en memoria; la lista review solo cambia con AppendReview.
// Las escrituras pasan por g para no intercalarse con una transacción en curso.
type ProductRepo struct {
	t *table[entity.Product]
	g gate
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	defer r.g.enter()()
	return r.t.insert(ctx, product.ID, product)
}
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.t.getByID(ctx, id)
}
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	defer r.g.enter()()
	return r.t.replace(ctx, product.ID, product)
}
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	return r.t.find(ctx, map[string]any{"company_id": companyID}, limit, offset)
}
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*entity.Product, error) {
	return r.t.find(ctx, map[string]any{"category_id": categoryID}, limit, offset)
}
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	defer r.g.enter()()
	return r.t.delete(ctx, id)
}
func (r *ProductRepo) AppendReview(ctx context.Context, productID, reviewID string) error {
	defer r.g.enter()()
	return r.t.mutate(ctx, productID, func(p *entity.Product) error {
		p.ReviewIDs = append(p.ReviewIDs, reviewID)
		return nil
	})
}
func (r *ProductRepo) PriceSummary(ctx context.Context, categoryID string) (*entity.PriceSummary, error) {
	list, err := r.t.find(ctx, map[string]any{"category_id": categoryID}, 0, 0)
	if err != nil {
		return nil, err
	}
	sum := &entity.PriceSummary{}
	for i, p := range list {
		if i == 0 || p.PricePerUnit.LessThan(sum.Min) {
			sum.Min = p.PricePerUnit
		}
		if i == 0 || p.PricePerUnit.GreaterThan(sum.Max) {
			sum.Max = p.PricePerUnit
		}
		sum.Count++
	}
	return sum, nil
}

// InquiryRepo consultas en memoria; inquiry_number único e inmutable.
type InquiryRepo struct {
	t *table[entity.Inquiry]
	g gate
}

func (r *InquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	defer r.g.enter()()
	return r.t.insert(ctx, inquiry.ID, inquiry)
}
func (r *InquiryRepo) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	return r.t.getByID(ctx, id)
}
func (r *InquiryRepo) GetByNumber(ctx context.Context, number string) (*entity.Inquiry, error) {
	return r.t.findOne(ctx, map[string]any{"inquiry_number": number})
}
func (r *InquiryRepo) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	defer r.g.enter()()
	return r.t.replace(ctx, inquiry.ID, inquiry)
}
func (r *InquiryRepo) MarkClosed(ctx context.Context, id string) error {
	defer r.g.enter()()
	return r.t.mutate(ctx, id, func(i *entity.Inquiry) error {
		if i.Status == entity.InquiryStatusClosed {
			return domain.ErrConflict
		}
		i.Status = entity.InquiryStatusClosed
		return nil
	})
}
func (r *InquiryRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Inquiry, error) {
	return r.t.find(ctx, map[string]any{"buyer_id": buyerID}, limit, offset)
}
func (r *InquiryRepo) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Inquiry, error) {
	return r.t.find(ctx, map[string]any{"seller_id": sellerID}, limit, offset)
}

// OrderRepo pedidos en memoria; order_number único e inmutable.
type OrderRepo struct {
	t *table[entity.Order]
	g gate
}

func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	defer r.g.enter()()
	return r.t.insert(ctx, order.ID, order)
}
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.t.getByID(ctx, id)
}
func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	return r.t.findOne(ctx, map[string]any{"order_number": number})
}
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	defer r.g.enter()()
	return r.t.replace(ctx, order.ID, order)
}
func (r *OrderRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, error) {
	return r.t.find(ctx, map[string]any{"buyer_id": buyerID}, limit, offset)
}

// ReviewRepo reseñas en memoria.
type ReviewRepo struct {
	t *table[entity.Review]
	g gate
}

func (r *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	defer r.g.enter()()
	return r.t.insert(ctx, review.ID, review)
}
func (r *ReviewRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, error) {
	return r.t.find(ctx, map[string]any{"product_id": productID}, limit, offset)
}

package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre MongoDB.
type CompanyRepo struct {
	c collection[entity.Company]
}

// NewCompanyRepository construye el adaptador sobre la colección companies.
func NewCompanyRepository(db *mongo.Database, reg *bsoncodec.Registry) *CompanyRepo {
	return &CompanyRepo{c: newCollection[entity.Company](db, reg, "companies", domain.ErrDuplicate)}
}

func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	return r.c.insert(ctx, company)
}

func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.c.findOne(ctx, bson.M{"_id": id})
}

func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	return r.c.replace(ctx, company.ID, company)
}

func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	return r.c.find(ctx, nil, limit, offset)
}

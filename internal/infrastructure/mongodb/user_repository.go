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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre MongoDB.
type UserRepo struct {
	c collection[entity.User]
}

// NewUserRepository construye el adaptador sobre la colección users.
func NewUserRepository(db *mongo.Database, reg *bsoncodec.Registry) *UserRepo {
	return &UserRepo{c: newCollection[entity.User](db, reg, "users", domain.ErrEmailAlreadyExists)}
}

// Create persiste un nuevo usuario. Email duplicado devuelve domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	return r.c.insert(ctx, user)
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.c.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.c.findOne(ctx, bson.M{"email": email})
}

// Update reemplaza el documento; company_id e is_company_owner nulos desaparecen.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.c.replace(ctx, user.ID, user)
}

func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return r.c.find(ctx, nil, limit, offset)
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}

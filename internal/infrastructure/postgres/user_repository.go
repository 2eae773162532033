package postgres

import (
	"context"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	t docTable[entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{t: newDocTable[entity.User](q, "users", domain.ErrEmailAlreadyExists)}
}

// Create persiste un nuevo usuario. Email duplicado devuelve domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	return r.t.insert(ctx, user.ID, user)
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.t.getByID(ctx, id)
}

// GetByEmail obtiene un usuario por email (ya normalizado).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.t.findOne(ctx, map[string]any{"email": email})
}

// Update reescribe el usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.t.replace(ctx, user.ID, user)
}

// List lista usuarios en orden de alta.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return r.t.find(ctx, nil, limit, offset)
}

// Delete elimina un usuario.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

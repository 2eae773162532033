package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
	"github.com/jhoicas/textile-market/internal/domain/validation"
	"github.com/jhoicas/textile-market/pkg/logger"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo       repository.UserRepository
	log        *logger.Logger
	bcryptCost int
}

// NewUserUseCase construye el caso de uso. bcryptCost 0 usa bcrypt.DefaultCost.
func NewUserUseCase(repo repository.UserRepository, log *logger.Logger, bcryptCost int) *UserUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{repo: repo, log: log.Component("users"), bcryptCost: bcryptCost}
}

// Register crea un usuario: valida, hashea el password con bcrypt y persiste.
// Devuelve domain.ErrEmailAlreadyExists si el email ya existe.
func (uc *UserUseCase) Register(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	var errs validation.Errors
	errs.Add(validation.Password(in.Password))

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleBuyer
	}
	user := &entity.User{
		ID:             uuid.New().String(),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          normalizeEmail(in.Email),
		Role:           role,
		PhoneNumber:    strings.TrimSpace(in.PhoneNumber),
		CompanyID:      in.CompanyID,
		IsCompanyOwner: in.IsCompanyOwner,
	}
	uc.enforceSellerFields(user)
	if err := validation.Merge(errs, validation.User(user)); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	if err := uc.setPassword(user, in.Password); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update aplica cambios parciales. En cada guardado un usuario que no es Seller
// pierde company_id e is_company_owner, sin importar lo enviado.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	var errs validation.Errors
	if in.FirstName != nil {
		user.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		user.LastName = strings.TrimSpace(*in.LastName)
	}
	emailChanged := false
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		emailChanged = email != user.Email
		user.Email = email
	}
	if in.Password != nil {
		errs.Add(validation.Password(*in.Password))
	}
	if in.Role != nil {
		user.Role = strings.TrimSpace(*in.Role)
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.CompanyID != nil {
		user.CompanyID = in.CompanyID
	}
	if in.IsCompanyOwner != nil {
		user.IsCompanyOwner = in.IsCompanyOwner
	}
	uc.enforceSellerFields(user)
	if err := validation.Merge(errs, validation.User(user)); err != nil {
		return nil, err
	}

	if emailChanged {
		existing, err := uc.repo.GetByEmail(ctx, user.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	if in.Password != nil {
		if err := uc.setPassword(user, *in.Password); err != nil {
			return nil, err
		}
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// GetByEmail obtiene un usuario por email (sin distinguir mayúsculas).
func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.UserListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// CheckPassword compara password con el hash almacenado del usuario con ese email.
// Devuelve domain.ErrUnauthorized si no coincide o el usuario no existe.
func (uc *UserUseCase) CheckPassword(ctx context.Context, email, password string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user), nil
}

// enforceSellerFields borra el vínculo con empresa de los usuarios que no son Seller.
func (uc *UserUseCase) enforceSellerFields(user *entity.User) {
	if user.IsSeller() {
		return
	}
	if user.CompanyID != nil || user.IsCompanyOwner != nil {
		uc.log.Debug().Str("user_id", user.ID).Str("role", user.Role).Msg("vínculo con empresa eliminado por rol")
	}
	user.CompanyID = nil
	user.IsCompanyOwner = nil
}

func (uc *UserUseCase) setPassword(user *entity.User, plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), uc.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

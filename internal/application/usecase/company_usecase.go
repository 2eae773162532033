package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/repository"
	"github.com/jhoicas/textile-market/internal/domain/validation"
	"github.com/jhoicas/textile-market/pkg/logger"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, log *logger.Logger) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, log: log.Component("companies"), now: time.Now}
}

// Create crea una nueva empresa sin verificar y con rating 0.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Description:        strings.TrimSpace(in.Description),
		BusinessType:       in.BusinessType,
		EstablishedYear:    in.EstablishedYear,
		ProductionCapacity: in.ProductionCapacity,
		Address:            toAddress(in.Address),
		Categories:         nonNilStrings(in.Categories),
		Rating:             0,
		AnnualTurnover:     in.AnnualTurnover,
		ContactInfo:        toContactInfo(in.ContactInfo),
		NumberOfEmployees:  in.NumberOfEmployees,
		IsVerified:         false,
	}
	company.Trim()
	if err := validation.Company(company, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Update aplica cambios parciales. IsVerified solo cambia vía Verify.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Description != nil {
		company.Description = strings.TrimSpace(*in.Description)
	}
	if in.BusinessType != nil {
		company.BusinessType = *in.BusinessType
	}
	if in.EstablishedYear != nil {
		company.EstablishedYear = *in.EstablishedYear
	}
	if in.ProductionCapacity != nil {
		company.ProductionCapacity = *in.ProductionCapacity
	}
	if in.Address != nil {
		company.Address = toAddress(*in.Address)
	}
	if in.Categories != nil {
		company.Categories = in.Categories
	}
	if in.Rating != nil {
		company.Rating = *in.Rating
	}
	if in.AnnualTurnover != nil {
		company.AnnualTurnover = *in.AnnualTurnover
	}
	if in.ContactInfo != nil {
		company.ContactInfo = toContactInfo(*in.ContactInfo)
	}
	if in.NumberOfEmployees != nil {
		company.NumberOfEmployees = *in.NumberOfEmployees
	}
	company.Trim()
	if err := validation.Company(company, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Verify marca la empresa como verificada (o revoca la verificación).
func (uc *CompanyUseCase) Verify(ctx context.Context, id string, verified bool) (*dto.CompanyResponse, error) {
	company, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	company.IsVerified = verified
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_id", company.ID).Bool("is_verified", verified).Msg("verificación de empresa actualizada")
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page = page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *CompanyUseCase) get(ctx context.Context, id string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

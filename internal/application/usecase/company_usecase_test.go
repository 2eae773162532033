package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain"
)

func acmeRequest() dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name:            "Acme Textiles",
		BusinessType:    "Manufacturer",
		EstablishedYear: 1990,
		Address:         addressDTO(),
		ContactInfo: dto.ContactInfoDTO{
			ContactPerson: "A",
			PhoneNumber:   "9876543210",
			Email:         "a@x.com",
		},
	}
}

// Ejemplo Acme: se crea sin verificar y con rating 0.
func TestCompanyUseCase_CreateAcme(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Companies.Create(f.ctx, acmeRequest())
	require.NoError(t, err)
	assert.False(t, resp.IsVerified)
	assert.Equal(t, float64(0), resp.Rating)
	assert.Equal(t, "1 Mill Rd,\nSurat, Gujarat - 395001", resp.Address.FullAddress)
	assert.NotNil(t, resp.Categories)

	got, err := f.uc.Companies.GetByID(f.ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Textiles", got.Name)
}

func TestCompanyUseCase_CreateInvalida(t *testing.T) {
	f := newFixture(t)
	in := acmeRequest()
	in.EstablishedYear = 1700
	in.Address.Pincode = "39500"
	in.ContactInfo.Email = "bad"
	in.AnnualTurnover = decimal.NewFromInt(-10)

	_, err := f.uc.Companies.Create(f.ctx, in)
	require.ErrorIs(t, err, domain.ErrValidation)
	requireFieldError(t, err, "established_year")
	requireFieldError(t, err, "address.pincode")
	requireFieldError(t, err, "contact_info.email")
	requireFieldError(t, err, "annual_turnover")
}

func TestCompanyUseCase_UpdateYVerify(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Companies.Create(f.ctx, acmeRequest())
	require.NoError(t, err)

	rating := 4.5
	updated, err := f.uc.Companies.Update(f.ctx, created.ID, dto.UpdateCompanyRequest{
		Name:   strPtr("  Acme Mills  "),
		Rating: &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Mills", updated.Name)
	assert.Equal(t, 4.5, updated.Rating)
	assert.False(t, updated.IsVerified)

	bad := 6.0
	_, err = f.uc.Companies.Update(f.ctx, created.ID, dto.UpdateCompanyRequest{Rating: &bad})
	requireFieldError(t, err, "rating")

	verified, err := f.uc.Companies.Verify(f.ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	_, err = f.uc.Companies.Verify(f.ctx, "missing", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUseCase_List(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		_, err := f.uc.Companies.Create(f.ctx, acmeRequest())
		require.NoError(t, err)
	}
	page, err := f.uc.Companies.List(f.ctx, dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	rest, err := f.uc.Companies.List(f.ctx, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest.Items, 1)
}

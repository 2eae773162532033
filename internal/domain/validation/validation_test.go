package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-market/internal/domain"
	"github.com/jhoicas/textile-market/internal/domain/entity"
	"github.com/jhoicas/textile-market/internal/domain/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func validAddress() entity.Address {
	return entity.Address{Street: "1 Mill Rd", City: "Surat", State: "Gujarat", Pincode: "395001"}
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var errs validation.Errors
	require.True(t, errors.As(err, &errs), "se esperaba validation.Errors, se obtuvo %v", err)
	return errs
}

func acmeCompany() *entity.Company {
	return &entity.Company{
		ID:              "c1",
		Name:            "Acme Textiles",
		BusinessType:    entity.BusinessManufacturer,
		EstablishedYear: 1990,
		Address:         validAddress(),
		ContactInfo: entity.ContactInfo{
			ContactPerson: "A",
			PhoneNumber:   "9876543210",
			Email:         "a@x.com",
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Address
// ──────────────────────────────────────────────────────────────────────────────

func TestPincode(t *testing.T) {
	valid := []string{"395001", "000000", "123456"}
	invalid := []string{"", "39500", "3950011", "39500a", " 39500", "३९५००१"}
	for _, v := range valid {
		assert.True(t, validation.IsPincode(v), v)
	}
	for _, v := range invalid {
		assert.False(t, validation.IsPincode(v), v)
	}
}

func TestAddress_PincodeEnCompany(t *testing.T) {
	c := acmeCompany()
	c.Address.Pincode = "12345"
	errs := fieldErrors(t, validation.Company(c, time.Now()))
	fe := errs.Field("address.pincode")
	require.NotNil(t, fe)
	assert.Equal(t, validation.KindInvalid, fe.Kind)
}

func TestPhone10(t *testing.T) {
	assert.True(t, validation.IsPhone10("9876543210"))
	assert.False(t, validation.IsPhone10("987654321"))
	assert.False(t, validation.IsPhone10("98765432100"))
	assert.False(t, validation.IsPhone10("98765-4321"))
}

// ──────────────────────────────────────────────────────────────────────────────
// User
// ──────────────────────────────────────────────────────────────────────────────

func TestUser_SellerSinEmpresa(t *testing.T) {
	u := &entity.User{FirstName: "S", LastName: "One", Email: "s@x.com", Role: entity.RoleSeller}
	err := validation.User(u)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrConditionalRequired)

	errs := fieldErrors(t, err)
	assert.NotNil(t, errs.Field("company_id"))
	assert.NotNil(t, errs.Field("is_company_owner"))
}

func TestUser_SellerCompleto(t *testing.T) {
	u := &entity.User{
		FirstName: "S", LastName: "One", Email: "s@x.com", Role: entity.RoleSeller,
		CompanyID: strPtr("c1"), IsCompanyOwner: boolPtr(false),
	}
	assert.NoError(t, validation.User(u))
}

func TestUser_BuyerConEmpresa(t *testing.T) {
	u := &entity.User{FirstName: "B", LastName: "One", Email: "b@x.com", Role: entity.RoleBuyer, CompanyID: strPtr("c1")}
	err := validation.User(u)
	require.Error(t, err)
	assert.NotNil(t, fieldErrors(t, err).Field("company_id"))
	assert.NotErrorIs(t, err, domain.ErrConditionalRequired)
}

func TestUser_CamposInvalidos(t *testing.T) {
	u := &entity.User{FirstName: "", LastName: "X", Email: "no-es-email", Role: "Guest", PhoneNumber: "123"}
	errs := fieldErrors(t, validation.User(u))

	require.NotNil(t, errs.Field("first_name"))
	assert.Equal(t, validation.KindRequired, errs.Field("first_name").Kind)
	assert.NotNil(t, errs.Field("email"))
	assert.NotNil(t, errs.Field("role"))
	assert.NotNil(t, errs.Field("phone_number"))
	assert.Nil(t, errs.Field("last_name"))
}

func TestPassword(t *testing.T) {
	assert.Nil(t, validation.Password("secret"))
	require.NotNil(t, validation.Password(""))
	assert.Equal(t, validation.KindRequired, validation.Password("").Kind)
	assert.Equal(t, validation.KindInvalid, validation.Password("12345").Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Company
// ──────────────────────────────────────────────────────────────────────────────

func TestCompany_EjemploAcme(t *testing.T) {
	assert.NoError(t, validation.Company(acmeCompany(), time.Now()))
}

func TestCompany_EstablishedYear(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		year int
		ok   bool
	}{
		{1799, false},
		{1800, true},
		{2025, true},
		{2026, false},
	}
	for _, tt := range tests {
		c := acmeCompany()
		c.EstablishedYear = tt.year
		err := validation.Company(c, now)
		if tt.ok {
			assert.NoError(t, err, tt.year)
			continue
		}
		require.Error(t, err, tt.year)
		assert.NotNil(t, fieldErrors(t, err).Field("established_year"), tt.year)
	}
}

func TestCompany_Reglas(t *testing.T) {
	c := acmeCompany()
	c.BusinessType = "Broker"
	c.Rating = 5.5
	c.AnnualTurnover = decimal.NewFromInt(-1)
	c.ContactInfo.PhoneNumber = "12345"
	c.ContactInfo.Website = "not a url"
	c.NumberOfEmployees = -3

	errs := fieldErrors(t, validation.Company(c, time.Now()))
	for _, field := range []string{"business_type", "rating", "annual_turnover", "contact_info.phone_number", "contact_info.website", "number_of_employees"} {
		assert.NotNil(t, errs.Field(field), field)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Category
// ──────────────────────────────────────────────────────────────────────────────

func TestCategory_RaizYPadre(t *testing.T) {
	for _, name := range entity.RootCategories {
		assert.NoError(t, validation.Category(&entity.Category{Name: name}), name)

		err := validation.Category(&entity.Category{Name: name, ParentID: strPtr("p1")})
		require.Error(t, err, name)
		assert.ErrorIs(t, err, domain.ErrConditionalRequired)
	}

	err := validation.Category(&entity.Category{Name: "Cotton Poplin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConditionalRequired)
	assert.NotNil(t, fieldErrors(t, err).Field("parent_id"))

	assert.NoError(t, validation.Category(&entity.Category{Name: "Cotton Poplin", ParentID: strPtr("p1")}))
}

func TestSlugChange(t *testing.T) {
	assert.Nil(t, validation.SlugChange("fabric", ""))
	assert.Nil(t, validation.SlugChange("fabric", "fabric"))

	fe := validation.SlugChange("fabric", "my-fabric")
	require.NotNil(t, fe)
	assert.Equal(t, validation.KindImmutable, fe.Kind)

	err := validation.Errors{*fe}.Err()
	assert.ErrorIs(t, err, domain.ErrImmutableField)
}

// ──────────────────────────────────────────────────────────────────────────────
// Product
// ──────────────────────────────────────────────────────────────────────────────

func validProduct() *entity.Product {
	p := &entity.Product{
		Name:         "Cotton Poplin",
		Description:  "60s poplin",
		CompanyID:    "c1",
		CategoryID:   "cat1",
		FabricType:   "Cotton",
		Unit:         entity.UnitMeter,
		PricePerUnit: decimal.NewFromInt(100),
	}
	p.ApplyDefaults()
	return p
}

func TestProduct_Valido(t *testing.T) {
	assert.NoError(t, validation.Product(validProduct()))
}

func TestProduct_LimitesDePrecio(t *testing.T) {
	p := validProduct()
	p.MinPrice = decimal.NewFromInt(200)
	p.MaxPrice = decimal.NewFromInt(100)
	assert.NotNil(t, fieldErrors(t, validation.Product(p)).Field("min_price"))

	p.MaxPrice = decimal.Zero
	assert.NoError(t, validation.Product(p), "max_price 0 no acota")

	p.MaxPrice = decimal.NewFromInt(200)
	assert.NoError(t, validation.Product(p))
}

func TestProduct_Enumeraciones(t *testing.T) {
	p := validProduct()
	p.Unit = "yard"
	p.FabricType = "Kevlar"
	p.SizeOptions = []string{"M", "XXL"}
	p.Availability = "Soon"
	p.Images = []string{"https://cdn.example.com/a.jpg", "nope"}
	p.MinimumOrderQuantity = 0
	p.Stock = -1
	p.PriceTiers = []entity.PriceTier{{MinQty: 10, Price: decimal.NewFromInt(-5)}}

	errs := fieldErrors(t, validation.Product(p))
	for _, field := range []string{"unit", "fabric_type", "size_options[1]", "availability", "images[1]", "minimum_order_quantity", "stock", "price_tiers[0].price"} {
		assert.NotNil(t, errs.Field(field), field)
	}
	assert.Nil(t, errs.Field("size_options[0]"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Inquiry / Order / Review
// ──────────────────────────────────────────────────────────────────────────────

func TestInquiry_Estado(t *testing.T) {
	i := &entity.Inquiry{
		InquiryNumber: "INQ-000001", BuyerID: "b", SellerID: "s", ProductID: "p",
		Quantity: 10, TargetPrice: decimal.NewFromInt(50), Message: "hola", Status: entity.InquiryStatusPending,
	}
	assert.NoError(t, validation.Inquiry(i))

	i.Status = "Open"
	assert.NotNil(t, fieldErrors(t, validation.Inquiry(i)).Field("status"))

	i.Status = entity.InquiryStatusResponded
	i.Responses = []entity.InquiryResponse{{SenderID: "s", Message: ""}}
	assert.NotNil(t, fieldErrors(t, validation.Inquiry(i)).Field("responses[0].message"))
}

func TestOrder_EstadosCanonicos(t *testing.T) {
	o := &entity.Order{
		OrderNumber: "ORD-000001", InquiryID: "i", BuyerID: "b", SellerID: "s",
		Items:           []entity.OrderItem{{ProductID: "p", Quantity: 2, UnitPrice: decimal.NewFromInt(10)}},
		TotalAmount:     decimal.NewFromInt(20),
		Status:          entity.OrderStatusPending,
		PaymentStatus:   entity.PaymentStatusPending,
		ShippingAddress: validAddress(),
	}
	assert.NoError(t, validation.Order(o))

	for _, status := range []string{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		o.Status = status
		assert.NoError(t, validation.Order(o), status)
	}

	o.Status = "Confirmed"
	assert.NotNil(t, fieldErrors(t, validation.Order(o)).Field("status"))

	o.Status = entity.OrderStatusPending
	o.Items[0].Quantity = 0
	assert.NotNil(t, fieldErrors(t, validation.Order(o)).Field("items[0].quantity"))
}

func TestReview_Rating(t *testing.T) {
	for rating := -1; rating <= 7; rating++ {
		r := &entity.Review{Review: "ok", Rating: rating, ProductID: "p", UserID: "u"}
		err := validation.Review(r)
		if rating >= entity.MinReviewRating && rating <= entity.MaxReviewRating {
			assert.NoError(t, err, rating)
			continue
		}
		require.Error(t, err, rating)
		assert.NotNil(t, fieldErrors(t, err).Field("rating"), rating)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Errors
// ──────────────────────────────────────────────────────────────────────────────

func TestErrors_Merge(t *testing.T) {
	prev := validation.Errors{{Field: "password", Kind: validation.KindRequired, Message: "es requerido"}}

	err := validation.Merge(prev, nil)
	require.Error(t, err)
	assert.Len(t, fieldErrors(t, err), 1)

	assert.NoError(t, validation.Merge(nil, nil))

	other := errors.New("boom")
	assert.Equal(t, other, validation.Merge(prev, other))

	more := validation.Errors{{Field: "email", Kind: validation.KindInvalid, Message: "email inválido"}}
	assert.Len(t, fieldErrors(t, validation.Merge(prev, more)), 2)
}

func TestErrors_Mensaje(t *testing.T) {
	errs := validation.Errors{
		{Field: "email", Kind: validation.KindInvalid, Message: "email inválido"},
		{Field: "role", Kind: validation.KindInvalid, Message: "no permitido"},
	}
	assert.Equal(t, "validación fallida: email: email inválido; role: no permitido", errs.Error())
}

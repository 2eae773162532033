package validation

import (
	"fmt"
	"time"

	"github.com/jhoicas/textile-market/internal/domain/entity"
)

// User valida un usuario listo para guardarse (password ya hasheado).
func User(u *entity.User) error {
	errs := Struct(u)
	errs = append(errs, SellerCompanyLink(u.Role, u.CompanyID, u.IsCompanyOwner)...)
	return errs.Err()
}

// Company valida una empresa; now fija el año máximo de fundación.
func Company(c *entity.Company, now time.Time) error {
	errs := Struct(c)
	if errs.Field("established_year") == nil {
		errs.Add(EstablishedYear(c.EstablishedYear, now.Year()))
	}
	errs.Add(NonNegative("annual_turnover", c.AnnualTurnover))
	return errs.Err()
}

// Category valida la relación raíz/padre de una categoría.
func Category(c *entity.Category) error {
	errs := Struct(c)
	errs.Add(CategoryParent(c.Name, c.ParentID))
	return errs.Err()
}

// Product valida precios, enumeraciones y cantidades de un producto.
func Product(p *entity.Product) error {
	errs := Struct(p)
	errs.Add(NonNegative("price_per_unit", p.PricePerUnit))
	errs.Add(NonNegative("min_price", p.MinPrice))
	errs.Add(NonNegative("max_price", p.MaxPrice))
	errs.Add(PriceBounds(p.MinPrice, p.MaxPrice))
	errs.Add(Availability(p.Availability))
	for i, tier := range p.PriceTiers {
		errs.Add(NonNegative(fmt.Sprintf("price_tiers[%d].price", i), tier.Price))
	}
	return errs.Err()
}

// Inquiry valida una consulta.
func Inquiry(i *entity.Inquiry) error {
	errs := Struct(i)
	errs.Add(NonNegative("target_price", i.TargetPrice))
	return errs.Err()
}

// Order valida un pedido y sus líneas.
func Order(o *entity.Order) error {
	errs := Struct(o)
	errs.Add(NonNegative("total_amount", o.TotalAmount))
	for i, item := range o.Items {
		errs.Add(NonNegative(fmt.Sprintf("items[%d].unit_price", i), item.UnitPrice))
	}
	return errs.Err()
}

// Review valida una reseña.
func Review(r *entity.Review) error {
	return Struct(r).Err()
}

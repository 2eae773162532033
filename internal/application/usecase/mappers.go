package usecase

import (
	"github.com/jhoicas/textile-market/internal/application/dto"
	"github.com/jhoicas/textile-market/internal/domain/entity"
)

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullName(),
		Email:          u.Email,
		Role:           u.Role,
		PhoneNumber:    u.PhoneNumber,
		CompanyID:      u.CompanyID,
		IsCompanyOwner: u.IsCompanyOwner,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toAddress(in dto.AddressDTO) entity.Address {
	a := entity.Address{
		Street:   in.Street,
		City:     in.City,
		State:    in.State,
		Pincode:  in.Pincode,
		Landmark: in.Landmark,
	}
	a.Trim()
	return a
}

func toAddressDTO(a entity.Address) dto.AddressDTO {
	return dto.AddressDTO{
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		Pincode:     a.Pincode,
		Landmark:    a.Landmark,
		FullAddress: a.FullAddress(),
	}
}

func toContactInfo(in dto.ContactInfoDTO) entity.ContactInfo {
	return entity.ContactInfo{
		ContactPerson: in.ContactPerson,
		PhoneNumber:   in.PhoneNumber,
		Email:         in.Email,
		Website:       in.Website,
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description,
		BusinessType:       c.BusinessType,
		EstablishedYear:    c.EstablishedYear,
		ProductionCapacity: c.ProductionCapacity,
		Address:            toAddressDTO(c.Address),
		Categories:         c.Categories,
		Rating:             c.Rating,
		AnnualTurnover:     c.AnnualTurnover,
		ContactInfo: dto.ContactInfoDTO{
			ContactPerson: c.ContactInfo.ContactPerson,
			PhoneNumber:   c.ContactInfo.PhoneNumber,
			Email:         c.ContactInfo.Email,
			Website:       c.ContactInfo.Website,
		},
		NumberOfEmployees: c.NumberOfEmployees,
		IsVerified:        c.IsVerified,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ParentID:    c.ParentID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toPriceTiers(in []dto.PriceTierDTO) []entity.PriceTier {
	out := make([]entity.PriceTier, 0, len(in))
	for _, t := range in {
		out = append(out, entity.PriceTier{MinQty: t.MinQty, Price: t.Price})
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	tiers := make([]dto.PriceTierDTO, 0, len(p.PriceTiers))
	for _, t := range p.PriceTiers {
		tiers = append(tiers, dto.PriceTierDTO{MinQty: t.MinQty, Price: t.Price})
	}
	return &dto.ProductResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		SellerID:             p.SellerID,
		CompanyID:            p.CompanyID,
		CategoryID:           p.CategoryID,
		FabricType:           p.FabricType,
		GSM:                  p.GSM,
		Unit:                 p.Unit,
		PriceTiers:           tiers,
		ColorOptions:         p.ColorOptions,
		SizeOptions:          p.SizeOptions,
		Stock:                p.Stock,
		MinimumOrderQuantity: p.MinimumOrderQuantity,
		PricePerUnit:         p.PricePerUnit,
		MinPrice:             p.MinPrice,
		MaxPrice:             p.MaxPrice,
		PriceRange:           p.PriceRange(),
		Availability:         p.Availability,
		Images:               p.Images,
		Reviews:              p.ReviewIDs,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func toInquiryResponse(i *entity.Inquiry) *dto.InquiryResponse {
	if i == nil {
		return nil
	}
	responses := make([]dto.InquiryResponseDTO, 0, len(i.Responses))
	for _, r := range i.Responses {
		responses = append(responses, dto.InquiryResponseDTO{SenderID: r.SenderID, Message: r.Message, CreatedAt: r.CreatedAt})
	}
	return &dto.InquiryResponse{
		ID:            i.ID,
		InquiryNumber: i.InquiryNumber,
		BuyerID:       i.BuyerID,
		SellerID:      i.SellerID,
		ProductID:     i.ProductID,
		Quantity:      i.Quantity,
		TargetPrice:   i.TargetPrice,
		Message:       i.Message,
		Status:        i.Status,
		Responses:     responses,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemDTO{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		InquiryID:       o.InquiryID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		PaymentStatus:   o.PaymentStatus,
		ShippingAddress: toAddressDTO(o.ShippingAddress),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	if r == nil {
		return nil
	}
	return &dto.ReviewResponse{
		ID:        r.ID,
		Review:    r.Review,
		Rating:    r.Rating,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

package usecase

// Module reúne los casos de uso del marketplace sobre un mismo almacenamiento.
type Module struct {
	Users      *UserUseCase
	Companies  *CompanyUseCase
	Categories *CategoryUseCase
	Products   *ProductUseCase
	Inquiries  *InquiryUseCase
	Orders     *OrderUseCase
	Reviews    *ReviewUseCase
}

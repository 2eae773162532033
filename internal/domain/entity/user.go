package entity

// Roles válidos para User.
const (
	RoleBuyer  = "Buyer"
	RoleSeller = "Seller"
	RoleAdmin  = "Admin"
)

// Roles lista los roles aceptados.
var Roles = []string{RoleBuyer, RoleSeller, RoleAdmin}

// User representa un usuario del marketplace (comprador, vendedor o administrador).
// CompanyID e IsCompanyOwner solo existen cuando Role es Seller.
type User struct {
	ID             string  `bson:"_id" json:"id"`
	FirstName      string  `bson:"first_name" json:"first_name" validate:"required"`
	LastName       string  `bson:"last_name" json:"last_name" validate:"required"`
	Email          string  `bson:"email" json:"email" validate:"required,email"`
	PasswordHash   string  `bson:"password_hash" json:"password_hash"` // bcrypt, nunca plano
	Role           string  `bson:"role" json:"role" validate:"required,oneof=Buyer Seller Admin"`
	PhoneNumber    string  `bson:"phone_number,omitempty" json:"phone_number,omitempty" validate:"omitempty,phone10"`
	CompanyID      *string `bson:"company_id,omitempty" json:"company_id,omitempty"`
	IsCompanyOwner *bool   `bson:"is_company_owner,omitempty" json:"is_company_owner,omitempty"`
	Timestamps     `bson:",inline"`
}

// FullName es el nombre completo derivado (no se persiste).
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsSeller informa si el usuario tiene rol Seller.
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}

package domain

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleSeller   UserRole = "seller"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID       uint64
	Login    string
	Password string
	Email    string
	Phone    string
	Role     UserRole
}

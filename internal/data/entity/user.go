package entity

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
	RoleVisitor  UserRole = "visitor"
)

// User is a login account. For staff, ID equals the paired Employee ID.
type User struct {
	ID       string   `db:"id" json:"id"`
	Name     string   `db:"name" json:"name"`
	Email    string   `db:"email" json:"email"`
	Password string   `db:"password" json:"-"`
	Role     UserRole `db:"role" json:"role"`
}

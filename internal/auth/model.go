package auth

// User is a back-office account. The bcrypt hash lives in Password;
// the plain text never leaves the service layer. Signup creates owners
// (role OWNER); staff accounts are provisioned by an owner later.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

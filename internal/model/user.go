package model

// User is an operator account. Password holds a bcrypt hash and is never
// serialised.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// UserInput carries the credentials for creating an account. bcrypt reads at
// most 72 bytes of a password, so the limit is in bytes, not characters.
type UserInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

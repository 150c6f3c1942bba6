package dto

// SignupRequest is the body of POST /api/users/signup.
type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SigninRequest is the body of POST /api/users/signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenDTO carries an issued bearer credential.
type TokenDTO struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}

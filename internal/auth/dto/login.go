package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyOTPInput struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type PasswordResetInput struct {
	Email string `json:"email"`
}

type ToggleMFAInput struct {
	Enabled bool `json:"enabled"`
}

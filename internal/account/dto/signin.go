package dto

type SignInInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

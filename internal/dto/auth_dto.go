// FILE: internal/dto/auth_dto.go
package dto

// Brandfolder OAuth DTOs

type AuthenticateResponse struct {
	Success      bool   `json:"success"`
	AuthURL      string `json:"auth_url,omitempty"`
	State        string `json:"state,omitempty"`
	Message      string `json:"message"`
	Instructions string `json:"instructions,omitempty"`
}

type TokenExchangeResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

package handler

import "custos/internal/auth/models"

type registerResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type logoutResponse struct {
	Username string `json:"username"`
}

type principalResponse struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

type listUsersResponse struct {
	Users []principalResponse `json:"users"`
}

func newPrincipalResponse(p *models.Principal) principalResponse {
	return principalResponse{
		Username:    p.Username,
		Email:       p.Email,
		Role:        string(p.Role),
		Description: p.Describe(),
	}
}

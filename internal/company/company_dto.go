package company

import "time"

type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoUrl"`
}

// UpdateCompanyRequest is a partial update: only non-nil fields change.
type UpdateCompanyRequest struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logoUrl"`
}

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logoUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

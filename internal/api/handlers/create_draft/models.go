package create_draft

import (
	"strings"

	"github.com/m04kA/D2D-MarketplaceService/internal/service/drafts/models"
)

// CreateDraftRequest HTTP request model
type CreateDraftRequest struct {
	ServiceID string `json:"serviceId"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateDraftRequest) ToServiceRequest(userID string) *models.CreateDraftRequest {
	return &models.CreateDraftRequest{
		UserID:    userID,
		ServiceID: strings.TrimSpace(r.ServiceID),
	}
}

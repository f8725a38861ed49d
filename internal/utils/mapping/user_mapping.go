package mapping

import (
	"github.com/SscSPs/exchange_desk/internal/core/domain"
	"github.com/SscSPs/exchange_desk/internal/models"
)

// ToDomainProviderUser converts a model ProviderUser to a domain ProviderUser
func ToDomainProviderUser(m models.ProviderUser) domain.ProviderUser {
	return domain.ProviderUser{
		ID:         m.ID,
		ProviderID: string(m.ProviderID),
		Name:       m.Name,
		Email:      m.Email,
		Role:       m.Role,
	}
}

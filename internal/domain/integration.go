package domain

import (
	"strings"
	"time"
)

type Platform string

const (
	PlatformFacebook Platform = "FACEBOOK"
	PlatformGoogle   Platform = "GOOGLE"
	PlatformOpenAI   Platform = "OPENAI"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformGoogle, PlatformOpenAI:
		return true
	}
	return false
}

// Integration guarda as credenciais de uma plataforma de anúncios.
// Existe no máximo uma linha relevante por plataforma, garantida por
// consulta-e-upsert no save (não por constraint de schema).
type Integration struct {
	ID        string    `json:"id"`
	Platform  Platform  `json:"platform"`
	APIKey    *string   `json:"apiKey,omitempty"`
	AccountID *string   `json:"accountId,omitempty"` // campo legado de conta única
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasCredential indica se a integração tem token utilizável.
func (i *Integration) HasCredential() bool {
	return i != nil && i.APIKey != nil && *i.APIKey != ""
}

// AdAccount é um escopo de conta de anúncios endereçável, vinculado a uma
// Integration. Várias por integração.
type AdAccount struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AccountID     string    `json:"accountId"`
	IntegrationID string    `json:"integrationId"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

const metaAccountPrefix = "act_"

// NormalizeMetaAccountID garante o prefixo exigido pela API do Meta,
// tornando o armazenamento idempotente ao formato digitado pelo usuário.
func NormalizeMetaAccountID(accountID string) string {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" || strings.HasPrefix(accountID, metaAccountPrefix) {
		return accountID
	}
	return metaAccountPrefix + accountID
}

type SaveIntegrationRequest struct {
	Platform  Platform `json:"platform"`
	APIKey    string   `json:"apiKey"`
	AccountID string   `json:"accountId"`
}

type AddAdAccountRequest struct {
	Name      string `json:"name"`
	AccountID string `json:"accountId"`
}

// SelectableAccount é uma entrada do seletor de contas do painel. Quando a
// integração só tem o campo legado, a lista contém uma entrada sintética.
type SelectableAccount struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AccountID string `json:"accountId"`
}

package metaclient

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"
)

// UpdateEntity aplica uma mutação (status, orçamento, nome) em uma única
// entidade remota. Uma escrita, sem retry: qualquer erro da API sobe
// verbatim para o chamador.
func (c *MetaClient) UpdateEntity(ctx context.Context, token, entityID string, params url.Values) error {
	_, err := c.doForm(ctx, token, entityID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"error":     err.Error(),
		}).Error("Erro ao atualizar entidade no Meta")
		return err
	}

	return nil
}

package repository

import (
	"database/sql"

	"github.com/pkg/errors"
)

// ErrNotFound indica que a escrita não encontrou a linha alvo.
var ErrNotFound = errors.New("record not found")

func requireRowsAffected(result sql.Result, msg string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrap(ErrNotFound, msg)
	}
	return nil
}

package services

import (
	"database/sql"

	"inventory_pos_backend/internal/repositories"
)

// Tx is the transaction surface services work with: the executor the
// repositories accept, plus commit and rollback. *sql.Tx satisfies it.
type Tx interface {
	repositories.SQLExecutor
	Commit() error
	Rollback() error
}

// TxBeginner starts transactions. Services hold this rather than a concrete
// *sql.DB.
type TxBeginner interface {
	Begin() (Tx, error)
}

type sqlTxBeginner struct {
	db *sql.DB
}

// NewTxBeginner adapts a *sql.DB to the TxBeginner interface.
func NewTxBeginner(db *sql.DB) TxBeginner {
	return sqlTxBeginner{db: db}
}

func (b sqlTxBeginner) Begin() (Tx, error) {
	tx, err := b.db.Begin()
	if err != nil {
		return nil, err
	}
	return tx, nil
}

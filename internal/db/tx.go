package db

import (
	"database/sql"
	"fmt"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
)

// NewTxManager создает менеджер транзакций поверх пула.
// Репозитории получают транзакцию из контекста через trmsql.DefaultCtxGetter.
func NewTxManager(db *sql.DB) (*manager.Manager, error) {
	m, err := manager.New(trmsql.NewDefaultFactory(db))
	if err != nil {
		return nil, fmt.Errorf("create transaction manager: %w", err)
	}
	return m, nil
}

package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

// TxManager выполняет fn в одной транзакции. Реализация - менеджер из go-transaction-manager.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type MemberService interface {
	// Join создает участника и, если teamName не пуст, сразу добавляет его в команду.
	Join(ctx context.Context, username string, age int, teamName string) (*domain.Member, error)
	// ChangeTeam переводит участника в команду teamName. Пустое имя убирает участника из команды.
	ChangeTeam(ctx context.Context, memberID int64, teamName string) (*domain.Member, error)
	GetMember(ctx context.Context, id int64) (*domain.Member, error)
	// ListMembers сортирует по возрасту по убыванию, затем по имени.
	// Непустой username оставляет только участников с этим именем.
	ListMembers(ctx context.Context, username string) ([]*domain.Member, error)

	// Массовые операции. Возвращают количество затронутых строк.
	BulkRename(ctx context.Context, ageBelow int, username string) (int64, error)
	BulkAddAge(ctx context.Context, delta int) (int64, error)
	BulkMultiplyAge(ctx context.Context, factor int) (int64, error)
	BulkDelete(ctx context.Context, ageAbove int) (int64, error)
}

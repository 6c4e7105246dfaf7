package repository

import (
	"context"

	"GoBuddy-App/internal/domain/model"
)

type PlayersRepository interface {
	GetByID(ctx context.Context, id int) (*model.Player, error)
	GetByAddress(ctx context.Context, address string) (*model.Player, error)
	// Insert プレイヤーを追加してIDを採番する
	// 同じ住所が並行して挿入された場合も行は1つだけ作られ、既存行が返る
	Insert(ctx context.Context, player *model.Player) (*model.Player, error)
	GetAll(ctx context.Context) ([]*model.Player, error)
}

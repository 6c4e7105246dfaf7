package repository

import (
	"context"
	"database/sql"
	"fmt"

	"GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/domain/repository"
	"GoBuddy-App/internal/infrastructure/database"
)

type PostgresPlayersRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPlayersRepository(client *database.PostgreSQLClient) repository.PlayersRepository {
	return &PostgresPlayersRepository{
		client: client,
	}
}

// playerRow 行スキャンの結果を受け取るための構造体
type playerRow struct {
	ID        int
	Name      string
	Address   string
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
}

// toPlayer playerRowをmodel.Playerに変換
func (pr *playerRow) toPlayer() *model.Player {
	player := &model.Player{
		ID:      pr.ID,
		Name:    pr.Name,
		Address: pr.Address,
	}
	if pr.Latitude.Valid && pr.Longitude.Valid {
		player.Coord = &model.LatLng{Lat: pr.Latitude.Float64, Lng: pr.Longitude.Float64}
	}
	return player
}

func (r *PostgresPlayersRepository) GetByID(ctx context.Context, id int) (*model.Player, error) {
	query := `SELECT id, name, address, latitude, longitude FROM players WHERE id = $1`

	var row playerRow
	err := r.client.DB.QueryRowContext(ctx, query, id).
		Scan(&row.ID, &row.Name, &row.Address, &row.Latitude, &row.Longitude)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("プレイヤーID %d の取得失敗: %w", id, err)
	}

	return row.toPlayer(), nil
}

func (r *PostgresPlayersRepository) GetByAddress(ctx context.Context, address string) (*model.Player, error) {
	query := `SELECT id, name, address, latitude, longitude FROM players WHERE address = $1`

	var row playerRow
	err := r.client.DB.QueryRowContext(ctx, query, address).
		Scan(&row.ID, &row.Name, &row.Address, &row.Latitude, &row.Longitude)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("住所によるプレイヤー取得失敗: %w", err)
	}

	return row.toPlayer(), nil
}

// Insert プレイヤーを追加してIDを採番する
// 住所にはUNIQUE制約があり、並行して同じ住所が挿入された場合は
// ON CONFLICTで片方が無視され、既存行を取り直して返す
func (r *PostgresPlayersRepository) Insert(ctx context.Context, player *model.Player) (*model.Player, error) {
	query := `INSERT INTO players (name, address, latitude, longitude) VALUES ($1, $2, $3, $4)
		ON CONFLICT (address) DO NOTHING
		RETURNING id`

	var lat, lng sql.NullFloat64
	if player.Coord != nil {
		lat = sql.NullFloat64{Float64: player.Coord.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: player.Coord.Lng, Valid: true}
	}

	var id int
	err := r.client.DB.QueryRowContext(ctx, query, player.Name, player.Address, lat, lng).Scan(&id)
	if err == sql.ErrNoRows {
		// 衝突して挿入されなかった → 先に入った行を返す
		existing, err := r.GetByAddress(ctx, player.Address)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("プレイヤーの挿入が衝突しましたが既存行が見つかりません: %s", player.Address)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("プレイヤーの挿入失敗: %w", err)
	}

	inserted := *player
	inserted.ID = id
	return &inserted, nil
}

func (r *PostgresPlayersRepository) GetAll(ctx context.Context) ([]*model.Player, error) {
	query := `SELECT id, name, address, latitude, longitude FROM players ORDER BY id`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("プレイヤー一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	var players []*model.Player
	for rows.Next() {
		var row playerRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Address, &row.Latitude, &row.Longitude); err != nil {
			return nil, fmt.Errorf("プレイヤーデータスキャンエラー: %w", err)
		}
		players = append(players, row.toPlayer())
	}

	return players, rows.Err()
}

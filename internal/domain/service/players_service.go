package service

import (
	"context"
	"fmt"
	"log"

	"GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/domain/repository"
)

// PlayersService プレイヤーレジストリのドメインサービス
type PlayersService interface {
	// FetchOrCreate 既存プレイヤーを返すか、住所をジオコーディングして新規作成する
	// idが指定されて見つかった場合は格納済みレコードがそのまま勝つ
	FetchOrCreate(ctx context.Context, id *int, name, address string) (*model.Player, error)
	GetAll(ctx context.Context) ([]*model.Player, error)
}

type playersService struct {
	playersRepo repository.PlayersRepository
	geocoding   GeocodingService
}

// NewPlayersService 新しいPlayersServiceインスタンスを作成
func NewPlayersService(playersRepo repository.PlayersRepository, geocoding GeocodingService) PlayersService {
	return &playersService{
		playersRepo: playersRepo,
		geocoding:   geocoding,
	}
}

// FetchOrCreate プレイヤーを取得または作成する
// 解決順: ID → 住所の完全一致 → ジオコーディングして新規挿入
// ジオコーディングに失敗しても座標なしでプレイヤーは保存される
func (s *playersService) FetchOrCreate(ctx context.Context, id *int, name, address string) (*model.Player, error) {
	if id != nil {
		player, err := s.playersRepo.GetByID(ctx, *id)
		if err != nil {
			return nil, fmt.Errorf("プレイヤーの取得に失敗: %w", err)
		}
		if player != nil {
			return player, nil
		}
	}

	existing, err := s.playersRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("プレイヤーの取得に失敗: %w", err)
	}
	if existing != nil {
		log.Printf("Player with address %s already exists", address)
		return existing, nil
	}

	coord, err := s.geocoding.Resolve(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("住所のジオコーディングに失敗: %w", err)
	}

	player := &model.Player{
		Name:    name,
		Address: address,
		Coord:   coord,
	}
	inserted, err := s.playersRepo.Insert(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("プレイヤーの保存に失敗: %w", err)
	}
	return inserted, nil
}

func (s *playersService) GetAll(ctx context.Context) ([]*model.Player, error) {
	return s.playersRepo.GetAll(ctx)
}

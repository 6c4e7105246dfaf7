package usecase

import (
	"context"
	"fmt"
	"log"

	"GoBuddy-App/internal/domain/helper"
	dmodel "GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/domain/repository"
	"GoBuddy-App/internal/domain/service"
	"GoBuddy-App/model"
)

type RecommendationUseCase interface {
	// Recommend はプレイヤー入力からランキング済みコース一覧を生成し、
	// 結果を保存してrecommendation_id付きで返す
	Recommend(ctx context.Context, inputs []model.PlayerInput) (*dmodel.RecommendationResult, error)

	// GetRecommendation は保存済みのランキング結果を取得する
	GetRecommendation(ctx context.Context, recommendationID string) (*dmodel.RecommendationResult, error)
}

// recommendationUseCaseImpl はRecommendationUseCaseの実装
type recommendationUseCaseImpl struct {
	playersService   service.PlayersService
	discoveryService service.CourseDiscoveryService
	rankingService   service.RankingService
	recommendRepo    repository.RecommendationRepository
}

// NewRecommendationUseCase は新しいRecommendationUseCaseインスタンスを作成
func NewRecommendationUseCase(
	playersService service.PlayersService,
	discoveryService service.CourseDiscoveryService,
	rankingService service.RankingService,
	recommendRepo repository.RecommendationRepository,
) RecommendationUseCase {
	return &recommendationUseCaseImpl{
		playersService:   playersService,
		discoveryService: discoveryService,
		rankingService:   rankingService,
		recommendRepo:    recommendRepo,
	}
}

// Recommend はランキングリクエストの主要処理
// プレイヤー解決 → 重心計算 → コース発見 → ランキング → ペア距離 → 保存
func (u *recommendationUseCaseImpl) Recommend(ctx context.Context, inputs []model.PlayerInput) (*dmodel.RecommendationResult, error) {
	log.Printf("🚀 コース推薦開始 (入力プレイヤー数: %d)", len(inputs))

	// Step 1: プレイヤーの解決（名前か住所が欠けたエントリは黙ってスキップ）
	var players []*dmodel.Player
	for _, input := range inputs {
		if input.Name == "" || input.Address == "" {
			continue
		}
		player, err := u.playersService.FetchOrCreate(ctx, input.ID, input.Name, input.Address)
		if err != nil {
			return nil, fmt.Errorf("プレイヤーの解決に失敗: %w", err)
		}
		players = append(players, player)
	}

	// Step 2: 座標が解決できたプレイヤーだけを距離計算の対象にする
	// （coordsとnamesはインデックスで揃った並行配列）
	var coords []dmodel.LatLng
	var names []string
	for _, player := range players {
		if player.HasCoord() {
			coords = append(coords, *player.Coord)
			names = append(names, player.Name)
		}
	}
	if len(coords) == 0 {
		return nil, dmodel.ErrNoResolvablePlayers
	}

	// Step 3: 重心を中心にコースを発見
	center := helper.CenterCoordinate(coords)
	courses, err := u.discoveryService.FindGolfCourses(ctx, center, dmodel.DefaultSearchRadiusMeters)
	if err != nil {
		return nil, fmt.Errorf("コースの発見に失敗: %w", err)
	}

	// Step 4: ランキングとペア距離
	bestCourses := u.rankingService.FindBestCourses(courses, coords, names)
	playerDistances := u.rankingService.CalculatePlayerDistances(coords, names)

	// Step 5: 結果を保存
	result := &dmodel.RecommendationResult{
		Players:         players,
		BestCourses:     bestCourses,
		PlayerDistances: playerDistances,
		CenterCoord:     center,
	}
	if err := u.recommendRepo.SaveRecommendation(ctx, result); err != nil {
		return nil, fmt.Errorf("ランキング結果の保存に失敗: %w", err)
	}

	log.Printf("✅ コース推薦完了 (ID: %s, コース数: %d)", result.RecommendationID, len(bestCourses))
	return result, nil
}

// GetRecommendation は保存済みのランキング結果を取得する
func (u *recommendationUseCaseImpl) GetRecommendation(ctx context.Context, recommendationID string) (*dmodel.RecommendationResult, error) {
	return u.recommendRepo.GetRecommendation(ctx, recommendationID)
}

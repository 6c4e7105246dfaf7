package repository

import (
	"context"

	"GoBuddy-App/internal/domain/model"
)

// RecommendationRepository ランキング結果の保存と取得の責務を持つリポジトリインターフェース
type RecommendationRepository interface {
	SaveRecommendation(ctx context.Context, result *model.RecommendationResult) error
	GetRecommendation(ctx context.Context, recommendationID string) (*model.RecommendationResult, error)
}

package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/domain/repository"
)

// FirestoreRecommendationRepository Firestoreを使用したランキング結果リポジトリ
type FirestoreRecommendationRepository struct {
	client *firestore.Client
}

// NewFirestoreRecommendationRepository 新しいFirestoreRecommendationRepositoryインスタンスを作成
func NewFirestoreRecommendationRepository(client *firestore.Client) repository.RecommendationRepository {
	return &FirestoreRecommendationRepository{
		client: client,
	}
}

// SaveRecommendation はランキング結果をFirestoreに保存し、recommendation_idを採番する
func (r *FirestoreRecommendationRepository) SaveRecommendation(ctx context.Context, result *model.RecommendationResult) error {
	if result.RecommendationID == "" {
		result.RecommendationID = fmt.Sprintf("rec_%s", uuid.New().String())
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}

	collection := r.client.Collection("recommendations")
	if _, err := collection.Doc(result.RecommendationID).Set(ctx, result); err != nil {
		log.Printf("❌ Failed to save recommendation %s: %v", result.RecommendationID, err)
		return fmt.Errorf("ランキング結果の保存に失敗しました: %w", err)
	}

	log.Printf("✅ Recommendation saved: %s", result.RecommendationID)
	return nil
}

// GetRecommendation は指定されたrecommendation_idのランキング結果をFirestoreから取得する
func (r *FirestoreRecommendationRepository) GetRecommendation(ctx context.Context, recommendationID string) (*model.RecommendationResult, error) {
	doc, err := r.client.Collection("recommendations").Doc(recommendationID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("ランキング結果が見つかりません: %s", recommendationID)
		}
		return nil, fmt.Errorf("ランキング結果の取得に失敗しました: %w", err)
	}

	var result model.RecommendationResult
	if err := doc.DataTo(&result); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}
	result.RecommendationID = recommendationID

	log.Printf("✅ Recommendation retrieved: %s", recommendationID)
	return &result, nil
}

package model

import "time"

// ErrNoResolvablePlayers ジオコーディングできたプレイヤーが1人もいない場合のエラー
var ErrNoResolvablePlayers = &NoResolvablePlayersError{}

// NoResolvablePlayersError ランキングの入力不足を表すエラー型
type NoResolvablePlayersError struct{}

func (e *NoResolvablePlayersError) Error() string {
	return "Unable to geocode any of the provided addresses."
}

// RecommendationResult 1回のランキングリクエストの結果
// Firestoreに保存され、recommendation_idで後から参照できる
type RecommendationResult struct {
	RecommendationID string               `json:"recommendation_id" firestore:"recommendationId"`
	Players          []*Player            `json:"players" firestore:"players"`
	BestCourses      []*Course            `json:"best_courses" firestore:"bestCourses"`
	PlayerDistances  []PlayerPairDistance `json:"player_distances" firestore:"playerDistances"`
	CenterCoord      LatLng               `json:"center_coord" firestore:"centerCoord"`
	CreatedAt        time.Time            `json:"created_at" firestore:"createdAt"`
}

package model

import (
	domain "GoBuddy-App/internal/domain/model"
)

// PlayerInput フォームから送られてくる1プレイヤー分の入力
// IDがあれば既存レコードが優先される
type PlayerInput struct {
	ID      *int   `json:"id,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RecommendRequest POST /recommendations のリクエストボディ
type RecommendRequest struct {
	Players []PlayerInput `json:"players"`
}

// GetPlayersResponse GET /players のレスポンス
type GetPlayersResponse struct {
	Players []*domain.Player `json:"players"`
}

// GetCoursesResponse GET /courses のレスポンス
type GetCoursesResponse struct {
	Courses []*domain.Course `json:"courses"`
}

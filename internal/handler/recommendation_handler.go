package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	dmodel "GoBuddy-App/internal/domain/model"
	"GoBuddy-App/internal/usecase"
	"GoBuddy-App/model"
)

// RecommendationHandler コース推薦に関するHTTPハンドラー
type RecommendationHandler struct {
	recommendUseCase usecase.RecommendationUseCase
}

// NewRecommendationHandler RecommendationHandlerの新しいインスタンスを作成
func NewRecommendationHandler(recommendUseCase usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendUseCase: recommendUseCase,
	}
}

// PostRecommendation POST /recommendations - プレイヤー一覧からランキング済みコースを生成
func (h *RecommendationHandler) PostRecommendation(c *gin.Context) {
	var req model.RecommendRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	result, err := h.recommendUseCase.Recommend(c.Request.Context(), req.Players)
	if err != nil {
		// 入力不足はユーザー向けメッセージとして返す（例外扱いにしない）
		if errors.Is(err, dmodel.ErrNoResolvablePlayers) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "no_resolvable_players",
				"message": dmodel.ErrNoResolvablePlayers.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to generate recommendation: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecommendation GET /recommendations/:id - 保存済みランキング結果の取得
func (h *RecommendationHandler) GetRecommendation(c *gin.Context) {
	recommendationID := c.Param("id")
	if recommendationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Recommendation ID is required",
		})
		return
	}

	result, err := h.recommendUseCase.GetRecommendation(c.Request.Context(), recommendationID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Failed to get recommendation: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

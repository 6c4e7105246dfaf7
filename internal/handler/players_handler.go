package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"GoBuddy-App/internal/domain/service"
	"GoBuddy-App/model"
)

// PlayersHandler プレイヤーレジストリに関するHTTPハンドラー
type PlayersHandler struct {
	playersService service.PlayersService
}

// NewPlayersHandler PlayersHandlerの新しいインスタンスを作成
func NewPlayersHandler(playersService service.PlayersService) *PlayersHandler {
	return &PlayersHandler{
		playersService: playersService,
	}
}

// GetPlayers GET /players - 登録済みプレイヤー一覧を取得
func (h *PlayersHandler) GetPlayers(c *gin.Context) {
	players, err := h.playersService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get players: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.GetPlayersResponse{
		Players: players,
	})
}

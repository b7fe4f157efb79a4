package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/hexcrusade/internal/constants"
	"github.com/ericogr/hexcrusade/internal/engine"
	"github.com/ericogr/hexcrusade/internal/hex"
)

type CreateGamePayload struct {
	Players []engine.PlayerSetup `json:"players" binding:"required"`
	// DemonSwordPosition overrides the default sword tile.
	DemonSwordPosition *hex.Coord `json:"demonSwordPosition,omitempty"`
}

// CreateGame seats the players and returns the game id with its first state.
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req CreateGamePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	id, st, err := h.games.CreateGame(req.Players, req.DemonSwordPosition)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{constants.JSONKeyGameID: id, constants.JSONKeyState: st})
}

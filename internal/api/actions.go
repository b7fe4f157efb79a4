package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/hexcrusade/internal/constants"
	"github.com/ericogr/hexcrusade/internal/game"
)

type ActionRequest struct {
	PlayerID string          `json:"playerId" binding:"required"`
	Action   game.GameAction `json:"action"`
}

func bindAction(c *gin.Context) (ActionRequest, bool) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Action.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return req, false
	}
	return req, true
}

// SubmitAction applies an action. Rule violations answer 200 with
// success=false and the unchanged state.
func (h *GameHandler) SubmitAction(c *gin.Context) {
	req, ok := bindAction(c)
	if !ok {
		return
	}
	res, err := h.games.ExecuteAction(c.Param(constants.ParamGameID), req.Action, req.PlayerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ValidateAction runs the actor and turn pre-check without applying a.
func (h *GameHandler) ValidateAction(c *gin.Context) {
	req, ok := bindAction(c)
	if !ok {
		return
	}
	res, err := h.games.Validate(c.Param(constants.ParamGameID), req.Action, req.PlayerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

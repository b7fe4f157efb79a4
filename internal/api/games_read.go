package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/hexcrusade/internal/constants"
	"github.com/ericogr/hexcrusade/internal/game"
	"github.com/ericogr/hexcrusade/internal/hex"
)

const maxLeaderboardSize = 100

// GetGame returns the current state of a game.
func (h *GameHandler) GetGame(c *gin.Context) {
	st, err := h.games.GetGame(c.Param(constants.ParamGameID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func playerIDQuery(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Query(constants.QueryPlayerID))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerIDRequired})
		return "", false
	}
	return id, true
}

// ListValidActions returns every action the player could legally take now.
func (h *GameHandler) ListValidActions(c *gin.Context) {
	playerID, ok := playerIDQuery(c)
	if !ok {
		return
	}
	actions, err := h.games.ValidActions(c.Param(constants.ParamGameID), playerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if actions == nil {
		actions = []game.ValidAction{}
	}
	c.JSON(http.StatusOK, actions)
}

// ListReachable returns the tiles the player can still walk to.
func (h *GameHandler) ListReachable(c *gin.Context) {
	playerID, ok := playerIDQuery(c)
	if !ok {
		return
	}
	tiles, err := h.games.Reachable(c.Param(constants.ParamGameID), playerID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if tiles == nil {
		tiles = []hex.Coord{}
	}
	c.JSON(http.StatusOK, tiles)
}

// GetBoard returns the default board as a flat tile list.
func GetBoard(c *gin.Context) {
	c.Header(constants.CacheControlHeader, "public, max-age=3600")
	c.JSON(http.StatusOK, game.DefaultBoard())
}

// GetDefinitions returns the static rules tables clients render from.
func GetDefinitions(c *gin.Context) {
	c.Header(constants.CacheControlHeader, "public, max-age=3600")
	c.JSON(http.StatusOK, gin.H{
		"classes":       game.Classes,
		"skills":        game.Skills,
		"monsters":      game.MonsterDefinitions,
		"revelations":   game.Revelations,
		"movementCosts": game.MovementCosts,
	})
}

// ListLeaderboard returns the top players by wins (desc), limited to top 10 by default.
func (h *GameHandler) ListLeaderboard(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{constants.JSONKeyError: constants.ErrLedgerDisabled})
		return
	}
	limit := constants.DefaultLeaderboardSize
	if s := c.Query(constants.QueryLimit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidLimit})
			return
		}
		limit = min(n, maxLeaderboardSize)
	}
	profiles, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(profiles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.JSON(http.StatusOK, out)
}

// GetPlayerStats returns the ledger profile of one player name.
func (h *GameHandler) GetPlayerStats(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{constants.JSONKeyError: constants.ErrLedgerDisabled})
		return
	}
	ps, err := h.repo.GetStatsByName(c.Param(constants.ParamPlayerName))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(ps)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, out)
}

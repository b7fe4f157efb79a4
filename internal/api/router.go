package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/hexcrusade/internal/constants"
)

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h *GameHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger())

	router.GET(constants.RouteHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
	})

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RouteGames, h.CreateGame)
		apiRoutes.GET(constants.RouteGameByID, h.GetGame)
		apiRoutes.POST(constants.RouteGameActions, h.SubmitAction)
		apiRoutes.POST(constants.RouteGameValidate, h.ValidateAction)
		apiRoutes.GET(constants.RouteGameValidActions, h.ListValidActions)
		apiRoutes.GET(constants.RouteGameReachable, h.ListReachable)

		apiRoutes.GET(constants.RouteBoard, GetBoard)
		apiRoutes.GET(constants.RouteDefinitions, GetDefinitions)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)
		apiRoutes.GET(constants.RoutePlayerStats, h.GetPlayerStats)
		apiRoutes.GET(constants.RouteVersion, Version)
	}
	return router
}

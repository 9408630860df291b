package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/internal/leaderboard"
)

var LeaderboardService *leaderboard.LeaderboardService

func RegisterLeaderboardRoutes(g *echo.Group) {
	g.GET("/", ListLeaderboardHandler)
	g.POST("/", CreateLeaderboardEntryHandler)
	g.GET("/by_team/", LeaderboardByTeamHandler)
	g.GET("/top_performers/", TopPerformersHandler)
	g.GET("/:user_id", GetLeaderboardEntryHandler)
	g.DELETE("/:user_id", DeleteLeaderboardEntryHandler)
}

func GetLeaderboardEntryHandler(c echo.Context) error {
	entry, err := LeaderboardService.GetByUser(c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

func DeleteLeaderboardEntryHandler(c echo.Context) error {
	if err := LeaderboardService.DeleteEntry(c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func ListLeaderboardHandler(c echo.Context) error {
	entries, err := LeaderboardService.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func CreateLeaderboardEntryHandler(c echo.Context) error {
	var e leaderboard.Entry
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	created, err := LeaderboardService.CreateEntry(e)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func LeaderboardByTeamHandler(c echo.Context) error {
	teamID := c.QueryParam("team_id")
	if teamID == "" {
		return apperrors.NewMissingParamError("team_id")
	}
	entries, err := LeaderboardService.ByTeam(teamID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func TopPerformersHandler(c echo.Context) error {
	limit := leaderboard.DefaultTopLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = parsed
	}

	entries, err := LeaderboardService.TopPerformers(limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/octofit/octofit-backend/internal/team"
)

var TeamService *team.TeamService

func RegisterTeamRoutes(g *echo.Group) {
	g.GET("/", ListTeamsHandler)
	g.POST("/", CreateTeamHandler)
	g.GET("/:id", GetTeamHandler)
	g.PUT("/:id", UpdateTeamHandler)
	g.DELETE("/:id", DeleteTeamHandler)
}

func ListTeamsHandler(c echo.Context) error {
	teams, err := TeamService.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}

func CreateTeamHandler(c echo.Context) error {
	var t team.Team
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	created, err := TeamService.Create(t)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func GetTeamHandler(c echo.Context) error {
	t, err := TeamService.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

func UpdateTeamHandler(c echo.Context) error {
	var fields team.Team
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	t, err := TeamService.Update(c.Param("id"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

func DeleteTeamHandler(c echo.Context) error {
	if err := TeamService.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

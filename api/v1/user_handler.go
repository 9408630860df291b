package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/internal/user"
)

const INVALID_REQUEST = "invalid request"

var UserService *user.UserService

func RegisterUserRoutes(g *echo.Group) {
	g.GET("/", ListUsersHandler)
	g.POST("/", CreateUserHandler)
	g.GET("/by_team/", UsersByTeamHandler)
	g.GET("/:id", GetUserHandler)
	g.PUT("/:id", UpdateUserHandler)
	g.DELETE("/:id", DeleteUserHandler)
}

func ListUsersHandler(c echo.Context) error {
	users, err := UserService.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func CreateUserHandler(c echo.Context) error {
	var u user.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	created, err := UserService.Create(u)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func UsersByTeamHandler(c echo.Context) error {
	teamID := c.QueryParam("team_id")
	if teamID == "" {
		return apperrors.NewMissingParamError("team_id")
	}
	users, err := UserService.ByTeam(teamID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func GetUserHandler(c echo.Context) error {
	u, err := UserService.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func UpdateUserHandler(c echo.Context) error {
	var fields user.User
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	u, err := UserService.Update(c.Param("id"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func DeleteUserHandler(c echo.Context) error {
	if err := UserService.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

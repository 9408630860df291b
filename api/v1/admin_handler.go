package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/octofit/octofit-backend/internal/admin"
)

var AdminService *admin.AdminService

func RegisterAdminLoginRoute(g *echo.Group) {
	g.POST("/login", AdminLoginHandler)
}

func RegisterAdminRoutes(g *echo.Group) {
	g.GET("/stats", AdminStatsHandler)
	g.POST("/seed", AdminSeedHandler)
}

func AdminLoginHandler(c echo.Context) error {
	var creds admin.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, err := AdminService.Login(creds)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func AdminStatsHandler(c echo.Context) error {
	stats, err := AdminService.Stats()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func AdminSeedHandler(c echo.Context) error {
	summary, err := AdminService.Seed()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/octofit/octofit-backend/internal/activity"
	"github.com/octofit/octofit-backend/internal/apperrors"
)

var ActivityService *activity.ActivityService

func RegisterActivityRoutes(g *echo.Group) {
	g.GET("/", ListActivitiesHandler)
	g.POST("/", CreateActivityHandler)
	g.GET("/by_user/", ActivitiesByUserHandler)
	g.GET("/by_type/", ActivitiesByTypeHandler)
	g.GET("/:id", GetActivityHandler)
	g.PUT("/:id", UpdateActivityHandler)
	g.DELETE("/:id", DeleteActivityHandler)
}

func ListActivitiesHandler(c echo.Context) error {
	activities, err := ActivityService.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

func CreateActivityHandler(c echo.Context) error {
	var a activity.Activity
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	created, err := ActivityService.Create(a)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func ActivitiesByUserHandler(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return apperrors.NewMissingParamError("user_id")
	}
	activities, err := ActivityService.ByUser(userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

func ActivitiesByTypeHandler(c echo.Context) error {
	activityType := c.QueryParam("activity_type")
	if activityType == "" {
		return apperrors.NewMissingParamError("activity_type")
	}
	activities, err := ActivityService.ByType(activityType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

func GetActivityHandler(c echo.Context) error {
	a, err := ActivityService.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func UpdateActivityHandler(c echo.Context) error {
	var fields activity.Activity
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	a, err := ActivityService.Update(c.Param("id"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func DeleteActivityHandler(c echo.Context) error {
	if err := ActivityService.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

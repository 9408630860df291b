package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/octofit/octofit-backend/internal/apperrors"
	"github.com/octofit/octofit-backend/internal/workout"
)

var WorkoutService *workout.WorkoutService

func RegisterWorkoutRoutes(g *echo.Group) {
	g.GET("/", ListWorkoutsHandler)
	g.POST("/", CreateWorkoutHandler)
	g.GET("/by_category/", WorkoutsByCategoryHandler)
	g.GET("/by_difficulty/", WorkoutsByDifficultyHandler)
	g.GET("/:id", GetWorkoutHandler)
	g.PUT("/:id", UpdateWorkoutHandler)
	g.DELETE("/:id", DeleteWorkoutHandler)
}

func ListWorkoutsHandler(c echo.Context) error {
	workouts, err := WorkoutService.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}

func CreateWorkoutHandler(c echo.Context) error {
	var w workout.Workout
	if err := c.Bind(&w); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	created, err := WorkoutService.Create(w)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func WorkoutsByCategoryHandler(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return apperrors.NewMissingParamError("category")
	}
	workouts, err := WorkoutService.ByCategory(category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}

func WorkoutsByDifficultyHandler(c echo.Context) error {
	difficulty := c.QueryParam("difficulty")
	if difficulty == "" {
		return apperrors.NewMissingParamError("difficulty")
	}
	workouts, err := WorkoutService.ByDifficulty(difficulty)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}

func GetWorkoutHandler(c echo.Context) error {
	w, err := WorkoutService.Get(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w)
}

func UpdateWorkoutHandler(c echo.Context) error {
	var fields workout.Workout
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	w, err := WorkoutService.Update(c.Param("id"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w)
}

func DeleteWorkoutHandler(c echo.Context) error {
	if err := WorkoutService.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/octofit/octofit-backend/api/middleware"
	v1 "github.com/octofit/octofit-backend/api/v1"
	"github.com/octofit/octofit-backend/internal/activity"
	"github.com/octofit/octofit-backend/internal/admin"
	"github.com/octofit/octofit-backend/internal/leaderboard"
	"github.com/octofit/octofit-backend/internal/seed"
	"github.com/octofit/octofit-backend/internal/team"
	"github.com/octofit/octofit-backend/internal/user"
	"github.com/octofit/octofit-backend/internal/workout"
	"github.com/octofit/octofit-backend/pkg/db"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(&user.User{}, &team.Team{}, &activity.Activity{}, &workout.Workout{})

	userRepo := user.NewUserRepository()
	teamRepo := team.NewTeamRepository()
	activityRepo := activity.NewActivityRepository()
	workoutRepo := workout.NewWorkoutRepository()
	snapshotStore := leaderboard.NewSnapshotStore()

	boardService := leaderboard.NewLeaderboardService(snapshotStore)
	seeder := seed.NewSeeder(userRepo, teamRepo, activityRepo, workoutRepo, boardService)

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		summary, err := seeder.Run()
		if err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		log.Printf("seed complete: %+v", *summary)
		return
	}

	v1.UserService = user.NewUserService(userRepo)
	v1.TeamService = team.NewTeamService(teamRepo)
	v1.ActivityService = activity.NewActivityService(activityRepo)
	v1.WorkoutService = workout.NewWorkoutService(workoutRepo)
	v1.LeaderboardService = boardService
	v1.AdminService = admin.NewAdminService(userRepo, teamRepo, activityRepo, workoutRepo, boardService, seeder)

	e := echo.New()

	e.HTTPErrorHandler = api_middleware.HTTPErrorHandler
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api")
	v1.RegisterUserRoutes(api.Group("/users"))
	v1.RegisterTeamRoutes(api.Group("/teams"))
	v1.RegisterActivityRoutes(api.Group("/activities"))
	v1.RegisterLeaderboardRoutes(api.Group("/leaderboard"))
	v1.RegisterWorkoutRoutes(api.Group("/workouts"))

	adminGroup := e.Group("/admin")
	v1.RegisterAdminLoginRoute(adminGroup)

	g := adminGroup.Group("")
	g.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterAdminRoutes(g)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/octofit/octofit-backend/internal/activity"
	"github.com/octofit/octofit-backend/internal/leaderboard"
	"github.com/octofit/octofit-backend/internal/team"
	"github.com/octofit/octofit-backend/internal/user"
	"github.com/octofit/octofit-backend/internal/workout"
)

var activityTypes = []string{"Running", "Cycling", "Swimming", "Weight Training", "Boxing", "Yoga"}

// distanceTypes are the activity types that carry a distance value.
var distanceTypes = map[string]bool{
	"Running":  true,
	"Cycling":  true,
	"Swimming": true,
}

type demoUser struct {
	name     string
	email    string
	password string
}

var marvelUsers = []demoUser{
	{"Tony Stark", "ironman@marvel.com", "arc_reactor_2024"},
	{"Steve Rogers", "captainamerica@marvel.com", "shield_forever"},
	{"Thor Odinson", "thor@marvel.com", "worthy_mjolnir"},
	{"Bruce Banner", "hulk@marvel.com", "gamma_smash"},
	{"Natasha Romanoff", "blackwidow@marvel.com", "red_room_spy"},
}

var dcUsers = []demoUser{
	{"Clark Kent", "superman@dc.com", "krypton_power"},
	{"Bruce Wayne", "batman@dc.com", "dark_knight"},
	{"Diana Prince", "wonderwoman@dc.com", "amazon_warrior"},
	{"Barry Allen", "flash@dc.com", "speed_force"},
	{"Arthur Curry", "aquaman@dc.com", "atlantis_king"},
}

var demoWorkouts = []workout.Workout{
	{Name: "Super Soldier Training", Description: "High-intensity workout inspired by Captain America", Category: "Strength", DifficultyLevel: "Advanced", EstimatedDuration: 60, EstimatedCalories: 500},
	{Name: "Asgardian Power Lift", Description: "Weightlifting routine fit for a god", Category: "Strength", DifficultyLevel: "Expert", EstimatedDuration: 45, EstimatedCalories: 400},
	{Name: "Speed Force Cardio", Description: "Lightning-fast cardio workout", Category: "Cardio", DifficultyLevel: "Intermediate", EstimatedDuration: 30, EstimatedCalories: 350},
	{Name: "Bat Cave HIIT", Description: "High-intensity interval training in the shadows", Category: "HIIT", DifficultyLevel: "Advanced", EstimatedDuration: 40, EstimatedCalories: 450},
	{Name: "Amazonian Warrior Yoga", Description: "Flexibility and strength from Themyscira", Category: "Flexibility", DifficultyLevel: "Beginner", EstimatedDuration: 50, EstimatedCalories: 200},
	{Name: "Arc Reactor Endurance", Description: "Tony Stark's personal endurance routine", Category: "Endurance", DifficultyLevel: "Intermediate", EstimatedDuration: 55, EstimatedCalories: 380},
	{Name: "Hulk Smash Circuit", Description: "Power-packed circuit training", Category: "Circuit", DifficultyLevel: "Expert", EstimatedDuration: 35, EstimatedCalories: 480},
	{Name: "Atlantean Swimming", Description: "Under the sea swimming workout", Category: "Cardio", DifficultyLevel: "Intermediate", EstimatedDuration: 45, EstimatedCalories: 320},
}

type Summary struct {
	Teams              int `json:"teams"`
	Users              int `json:"users"`
	Activities         int `json:"activities"`
	LeaderboardEntries int `json:"leaderboard_entries"`
	Workouts           int `json:"workouts"`
}

type Seeder struct {
	users      user.UserRepository
	teams      team.TeamRepository
	activities activity.ActivityRepository
	workouts   workout.WorkoutRepository
	board      *leaderboard.LeaderboardService
}

func NewSeeder(
	users user.UserRepository,
	teams team.TeamRepository,
	activities activity.ActivityRepository,
	workouts workout.WorkoutRepository,
	board *leaderboard.LeaderboardService,
) *Seeder {
	return &Seeder{
		users:      users,
		teams:      teams,
		activities: activities,
		workouts:   workouts,
		board:      board,
	}
}

// Run clears all five collections, repopulates the demo dataset and
// recomputes the leaderboard once.
func (s *Seeder) Run() (*Summary, error) {
	log.Println("Clearing existing data...")
	if err := s.clear(); err != nil {
		return nil, err
	}

	log.Println("Creating teams...")
	marvel, err := s.teams.CreateTeam(&team.Team{Name: "Team Marvel", Description: "Earth's Mightiest Heroes"})
	if err != nil {
		return nil, err
	}
	dc, err := s.teams.CreateTeam(&team.Team{Name: "Team DC", Description: "Justice League United"})
	if err != nil {
		return nil, err
	}

	log.Println("Creating users...")
	allUsers := []user.User{}
	for _, d := range marvelUsers {
		u, err := s.createUser(d, marvel.ID)
		if err != nil {
			return nil, err
		}
		allUsers = append(allUsers, *u)
	}
	for _, d := range dcUsers {
		u, err := s.createUser(d, dc.ID)
		if err != nil {
			return nil, err
		}
		allUsers = append(allUsers, *u)
	}

	log.Println("Creating activities...")
	allActivities := []activity.Activity{}
	now := time.Now()
	for i, u := range allUsers {
		numActivities := 3 + (i % 3)
		for j := 0; j < numActivities; j++ {
			activityType := activityTypes[j%len(activityTypes)]
			duration := 30 + (j * 15)

			var distance *float64
			if distanceTypes[activityType] {
				d := (float64(duration) / 60) * 10
				distance = &d
			}

			a, err := s.activities.CreateActivity(&activity.Activity{
				UserID:         u.ID,
				ActivityType:   activityType,
				Duration:       duration,
				CaloriesBurned: duration * 8,
				Distance:       distance,
				Date:           now.Add(-time.Duration(i)*24*time.Hour - time.Duration(j)*time.Hour),
				Notes:          fmt.Sprintf("%s doing %s", u.Name, activityType),
			})
			if err != nil {
				return nil, err
			}
			allActivities = append(allActivities, *a)
		}
	}

	log.Println("Computing leaderboard...")
	teamsByID := map[string]team.Team{
		marvel.ID: *marvel,
		dc.ID:     *dc,
	}
	entries, err := leaderboard.Recompute(allUsers, allActivities, teamsByID)
	if err != nil {
		return nil, err
	}
	if err := s.board.Rebuild(entries); err != nil {
		return nil, err
	}

	log.Println("Creating workouts...")
	for _, w := range demoWorkouts {
		if _, err := s.workouts.CreateWorkout(&w); err != nil {
			return nil, err
		}
	}

	return &Summary{
		Teams:              2,
		Users:              len(allUsers),
		Activities:         len(allActivities),
		LeaderboardEntries: len(entries),
		Workouts:           len(demoWorkouts),
	}, nil
}

func (s *Seeder) clear() error {
	if err := s.users.DeleteAllUsers(); err != nil {
		return err
	}
	if err := s.teams.DeleteAllTeams(); err != nil {
		return err
	}
	if err := s.activities.DeleteAllActivities(); err != nil {
		return err
	}
	if err := s.workouts.DeleteAllWorkouts(); err != nil {
		return err
	}
	return s.board.Clear()
}

func (s *Seeder) createUser(d demoUser, teamID string) (*user.User, error) {
	return s.users.CreateUser(&user.User{
		Name:     d.name,
		Email:    d.email,
		Password: d.password,
		TeamID:   teamID,
	})
}

package main

import (
	"context"
	"errors"
	"flag"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"

	"github.com/pageza/fitplan/backend/config"
	"github.com/pageza/fitplan/backend/internal/database"
	"github.com/pageza/fitplan/backend/internal/recommendation"
	"github.com/pageza/fitplan/backend/internal/service"
	"github.com/pageza/fitplan/backend/internal/types"
)

// seed fills a development database with fake profiles and plans.
func main() {
	users := flag.Int("users", 10, "Number of profiles to create")
	plans := flag.Int("plans", 3, "Number of workout and diet plans to create")
	seed := flag.Int64("seed", 0, "Random seed, 0 for a random one")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Environment.IsProduction() {
		logrus.Fatal("Refusing to seed a production database")
	}

	db, err := database.New(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	gofakeit.Seed(*seed)
	ctx := context.Background()

	userService := service.NewUserService(db, nil, nil)
	for i := 0; i < *users; i++ {
		req := fakeUser()
		user, summary, err := userService.CreateUser(ctx, req)
		if errors.Is(err, service.ErrUserExists) {
			logrus.Infof("User %s already exists, skipping...", req.Email)
			continue
		}
		if err != nil {
			logrus.Fatalf("Failed to create user %s: %v", req.Email, err)
		}
		logrus.WithFields(logrus.Fields{
			"email":   user.Email,
			"goal":    user.BodyGoal,
			"workout": summary.WorkoutPlanName,
		}).Info("Created user")
	}

	workouts := service.NewWorkoutPlanService(db, nil)
	diets := service.NewDietPlanService(db, nil)
	for i := 0; i < *plans; i++ {
		if _, err := workouts.CreateWorkoutPlan(ctx, fakeWorkoutPlan()); err != nil {
			logrus.Fatalf("Failed to create workout plan: %v", err)
		}
		if _, err := diets.CreateDietPlan(ctx, fakeDietPlan()); err != nil {
			logrus.Fatalf("Failed to create diet plan: %v", err)
		}
	}

	logrus.Infof("Seeded %d users and %d workout/diet plan pairs", *users, *plans)
}

func fakeUser() *types.CreateUserRequest {
	goal := recommendation.Goals[gofakeit.Number(0, len(recommendation.Goals)-1)]
	return &types.CreateUserRequest{
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Height:    float64(gofakeit.Number(150, 200)),
		Weight:    float64(gofakeit.Number(50, 110)),
		Age:       gofakeit.Number(18, 70),
		Gender:    gofakeit.RandomString([]string{"male", "female"}),
		BodyGoal:  goal.String(),
		Timeframe: gofakeit.Number(4, 52),
	}
}

func fakeWorkoutPlan() *types.CreateWorkoutPlanRequest {
	req := &types.CreateWorkoutPlanRequest{
		Name:       gofakeit.AppName() + " Workout",
		Duration:   gofakeit.Number(20, 90),
		Difficulty: gofakeit.RandomString([]string{"beginner", "intermediate", "advanced"}),
		BodyFocus:  gofakeit.RandomString([]string{"full body", "upper", "lower", "core"}),
	}
	for i := 0; i < gofakeit.Number(3, 6); i++ {
		req.Exercises = append(req.Exercises, types.CreateExerciseRequest{
			Name:     gofakeit.RandomString([]string{"Squat", "Deadlift", "Bench Press", "Row", "Lunge", "Plank", "Pull-up"}),
			Sets:     gofakeit.Number(2, 5),
			Reps:     gofakeit.Number(6, 15),
			RestTime: gofakeit.Number(30, 120),
			BodyPart: gofakeit.RandomString([]string{"chest", "back", "legs", "arms", "core"}),
		})
	}
	return req
}

func fakeDietPlan() *types.CreateDietPlanRequest {
	calories := gofakeit.Number(1500, 3000)
	req := &types.CreateDietPlanRequest{
		Name:        gofakeit.AppName() + " Diet",
		CalorieGoal: &calories,
	}
	for i := 0; i < 4; i++ {
		recipe := gofakeit.Sentence(12)
		req.Meals = append(req.Meals, types.CreateMealRequest{
			Name:     gofakeit.RandomString([]string{gofakeit.Breakfast(), gofakeit.Lunch(), gofakeit.Dinner(), gofakeit.Snack()}),
			Calories: calories / 4,
			Protein:  gofakeit.Number(15, 50),
			Carbs:    gofakeit.Number(20, 90),
			Fat:      gofakeit.Number(5, 30),
			PrepTime: gofakeit.Number(5, 45),
			Recipe:   &recipe,
		})
	}
	return req
}

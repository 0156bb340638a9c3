package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/fitplan/backend/config"
	"github.com/pageza/fitplan/backend/internal/models"
	"github.com/pageza/fitplan/backend/internal/testhelpers"
)

const migrationsDir = "../../migrations"

func TestMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "001_a_rollback.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o700))

	files, err := MigrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_a.sql", "002_b.sql"}, files)
	assert.Equal(t, "001_a_rollback.sql", RollbackFile("001_a.sql"))

	_, err = MigrationFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestRepositoryMigrationsHaveRollbacks(t *testing.T) {
	files, err := MigrationFiles(migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		_, err := os.Stat(filepath.Join(migrationsDir, RollbackFile(file)))
		assert.NoError(t, err, "missing rollback for %s", file)
	}
}

func TestNewSQLite(t *testing.T) {
	cfg := &config.Config{
		Environment: config.Test,
		DBDriver:    config.DriverSQLite,
		DBPath:      filepath.Join(t.TempDir(), "fitplan.db"),
	}

	db, err := New(cfg)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, RunMigrations(db, migrationsDir))
	assert.NoError(t, HealthCheck(context.Background(), db))
	assert.True(t, db.Migrator().HasTable(&models.WorkoutPlan{}))
	assert.True(t, db.Migrator().HasTable(&models.Meal{}))
}

func TestNewUnsupportedDriver(t *testing.T) {
	_, err := New(&config.Config{DBDriver: "mysql"})
	assert.Error(t, err)
}

func TestHealthCheckClosed(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	require.NoError(t, Close(db))
	assert.Error(t, HealthCheck(context.Background(), db))
}

func TestNewRedisClientDisabled(t *testing.T) {
	client, err := NewRedisClient(&config.Config{})
	assert.NoError(t, err)
	assert.Nil(t, client)

	_, err = NewRedisClient(&config.Config{RedisURL: "not a url"})
	assert.Error(t, err)
}

func TestRunMigrationsPostgres(t *testing.T) {
	pg := testhelpers.SetupPostgres(t)

	require.NoError(t, RunMigrations(pg.DB, migrationsDir))
	// a second run only skips
	require.NoError(t, RunMigrations(pg.DB, migrationsDir))

	files, err := MigrationFiles(migrationsDir)
	require.NoError(t, err)
	var applied int64
	require.NoError(t, pg.DB.Table(MigrationsTable).Count(&applied).Error)
	assert.Equal(t, int64(len(files)), applied)

	user := models.User{Name: "Test User", Email: "test@example.com", Height: 170, Weight: 70, Age: 30, Gender: "female", BodyGoal: "maintain", Timeframe: 8}
	require.NoError(t, pg.DB.Create(&user).Error)

	dup := models.User{Name: "Other", Email: "test@example.com", Gender: "male", BodyGoal: "maintain"}
	assert.ErrorIs(t, pg.DB.Create(&dup).Error, gorm.ErrDuplicatedKey)

	plan := models.WorkoutPlan{
		Name: "Legs", Duration: 40, Difficulty: "beginner", BodyFocus: "lower",
		Exercises: []models.Exercise{{Name: "Squat", Sets: 3, Reps: 10, RestTime: 60, BodyPart: "legs"}},
	}
	require.NoError(t, pg.DB.Create(&plan).Error)

	var loaded models.WorkoutPlan
	require.NoError(t, pg.DB.Preload("Exercises").First(&loaded, "id = ?", plan.ID).Error)
	assert.Len(t, loaded.Exercises, 1)
}

func TestPlanOwnerForeignKeysPostgres(t *testing.T) {
	pg := testhelpers.SetupPostgres(t)
	require.NoError(t, RunMigrations(pg.DB, migrationsDir))

	stranger := uuid.New()
	orphan := models.DietPlan{Name: "Cut", UserID: &stranger}
	assert.Error(t, pg.DB.Create(&orphan).Error)

	owner := models.User{Name: "Owner", Email: "owner@example.com", Height: 180, Weight: 80, Age: 40, Gender: "male", BodyGoal: "lose_weight", Timeframe: 12}
	require.NoError(t, pg.DB.Create(&owner).Error)

	workout := models.WorkoutPlan{Name: "Push", Duration: 45, Difficulty: "advanced", BodyFocus: "upper", UserID: &owner.ID}
	require.NoError(t, pg.DB.Create(&workout).Error)
	diet := models.DietPlan{Name: "Cut", UserID: &owner.ID}
	require.NoError(t, pg.DB.Create(&diet).Error)

	require.NoError(t, pg.DB.Delete(&owner).Error)

	// plans outlive their owner
	var loadedWorkout models.WorkoutPlan
	require.NoError(t, pg.DB.First(&loadedWorkout, "id = ?", workout.ID).Error)
	assert.Nil(t, loadedWorkout.UserID)
	var loadedDiet models.DietPlan
	require.NoError(t, pg.DB.First(&loadedDiet, "id = ?", diet.ID).Error)
	assert.Nil(t, loadedDiet.UserID)
}

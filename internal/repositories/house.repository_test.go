package repositories_test

import (
	"context"
	"testing"
	"time"
	"wisma/internal/database"
	"wisma/internal/models"
	"wisma/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryDB(t *testing.T) database.DB {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	db := database.DB{SQL: gormDB}
	require.NoError(t, db.MigrateModels())

	return db
}

func TestHouseRepository_GetAll_AnnotatesOpenOccupant(t *testing.T) {
	db := setupRepositoryDB(t)
	repo := repositories.NewHouseRepository()
	ctx := context.Background()

	occupied := models.House{Number: "A-01"}
	vacant := models.House{Number: "A-02"}
	require.NoError(t, db.SQL.Create(&occupied).Error)
	require.NoError(t, db.SQL.Create(&vacant).Error)

	resident := models.Resident{Name: "Budi", OccupantStatus: models.OccupantStatusPermanent}
	require.NoError(t, db.SQL.Create(&resident).Error)

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	ended := start.AddDate(0, 6, 0)
	histories := []models.OccupantHistory{
		{HouseID: occupied.ID, ResidentID: resident.ID, StartDate: start},
		{HouseID: vacant.ID, ResidentID: resident.ID, StartDate: start, EndDate: &ended},
	}
	require.NoError(t, db.SQL.Create(&histories).Error)

	houses, err := repo.GetAll(ctx, db.SQL)
	require.NoError(t, err)
	require.Len(t, houses, 2)

	assert.Equal(t, "A-01", houses[0].Number)
	require.NotNil(t, houses[0].RecentOccupant)
	assert.Equal(t, "Budi", *houses[0].RecentOccupant)

	assert.Equal(t, "A-02", houses[1].Number)
	assert.Nil(t, houses[1].RecentOccupant, "closed occupancy must not annotate the house")
}

func TestHouseRepository_Update_MissingHouse(t *testing.T) {
	db := setupRepositoryDB(t)
	repo := repositories.NewHouseRepository()

	err := repo.Update(context.Background(), db.SQL, 999, &models.House{
		Number: "Z-99",
		Status: models.HouseStatusActive,
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHouseRepository_Delete_SoftDeletes(t *testing.T) {
	db := setupRepositoryDB(t)
	repo := repositories.NewHouseRepository()
	ctx := context.Background()

	house := models.House{Number: "B-01"}
	require.NoError(t, db.SQL.Create(&house).Error)

	require.NoError(t, repo.Delete(ctx, db.SQL, house.ID))

	_, err := repo.GetByID(ctx, db.SQL, house.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.SQL.Unscoped().Model(&models.House{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "delete must keep the row with a deleted_at mark")
}

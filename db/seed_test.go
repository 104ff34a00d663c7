package db

import (
	"testing"

	"bms-server/entities"
	"bms-server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) Database {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:db_seed_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// cache=shared keeps the database alive across pooled connections but
	// also across tests; start from a clean slate.
	for _, table := range []string{"users", "apartments", "notices", "private_notices", "complaints", "chat_messages"} {
		gdb.Exec("DROP TABLE IF EXISTS " + table)
	}
	require.NoError(t, Migrate(gdb))
	return &GormDatabase{DB: gdb}
}

func TestSeedGrid(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, SeedGrid(database, 3, 2))

	var apartments []entities.Apartment
	require.NoError(t, database.GetDB().Order("floor ASC, unit_number ASC").Find(&apartments).Error)
	require.Len(t, apartments, 6)
	assert.Equal(t, "1A", apartments[0].UnitNumber)
	assert.Equal(t, "3B", apartments[5].UnitNumber)
	assert.Equal(t, 3, apartments[5].Floor)

	// Idempotent: a second seed must not add rows even with other sizes.
	require.NoError(t, SeedGrid(database, 10, 4))
	var count int64
	require.NoError(t, database.GetDB().Model(&entities.Apartment{}).Count(&count).Error)
	assert.EqualValues(t, 6, count)
}

func TestSeedAdmin(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, SeedAdmin(database, "admin@bms.com", "admin123"))

	var admin entities.User
	require.NoError(t, database.GetDB().Where("role = ?", entities.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "admin@bms.com", admin.Email)
	assert.True(t, utils.CheckPasswordHash("admin123", admin.PasswordHash))

	// Idempotent: no second admin is created.
	require.NoError(t, SeedAdmin(database, "other@bms.com", "whatever"))
	var count int64
	require.NoError(t, database.GetDB().Model(&entities.User{}).Where("role = ?", entities.RoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

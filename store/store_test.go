package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tally/internal/models"
	"github.com/ayoisaiah/tally/store"
)

var drivers = []string{store.DriverBolt, store.DriverSQLite}

func openStore(t *testing.T, driver string, users ...string) store.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tally_"+driver+".db")

	db, err := store.Open(driver, path, store.WithUsers(users...))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func newSession(user, category string, end time.Time, secs int64) *models.Session {
	return &models.Session{
		StartTime:       end.Add(-time.Duration(secs) * time.Second),
		EndTime:         end,
		Category:        category,
		WorkDone:        "notes",
		UserID:          user,
		DurationSeconds: secs,
		Efficiency:      80,
	}
}

func forEachDriver(t *testing.T, fn func(t *testing.T, driver string)) {
	t.Helper()

	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			fn(t, driver)
		})
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		db := openStore(t, driver, "ayo")

		_, err := db.AddCategory("Reading")
		require.NoError(t, err)

		require.NoError(t, db.EnsureSchema())
		require.NoError(t, db.EnsureSchema())

		names, err := db.ListCategories()
		require.NoError(t, err)
		assert.Equal(t, []string{"Reading"}, names)
	})
}

func TestAddCategoryDuplicate(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		db := openStore(t, driver, "ayo")

		_, err := db.AddCategory("X")
		require.NoError(t, err)

		_, err = db.AddCategory("X")
		assert.ErrorIs(t, err, store.ErrDuplicateCategory)

		names, err := db.ListCategories()
		require.NoError(t, err)
		assert.Equal(t, []string{"X"}, names)
	})
}

func TestAddCategoryRejectsEmptyName(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		db := openStore(t, driver)

		_, err := db.AddCategory("   ")
		assert.Error(t, err)
	})
}

func TestAddCategoryInitialisesTotalsForKnownUsers(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		db := openStore(t, driver, "ayo", "bola")

		names, err := db.AddCategory("Task 10")
		require.NoError(t, err)
		assert.Equal(t, []string{"Task 10"}, names)

		names, err = db.AddCategory("Task 2")
		require.NoError(t, err)
		assert.Equal(t, []string{"Task 2", "Task 10"}, names)

		for _, user := range []string{"ayo", "bola"} {
			totals, err := db.LoadUserTotals(user)
			require.NoError(t, err)
			assert.Equal(t, models.Totals{"Task 2": 0, "Task 10": 0}, totals)
		}
	})
}

func TestAppendSessionUpdatesTotals(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		db := openStore(t, driver, "ayo")

		_, err := db.AddCategory("Reading")
		require.NoError(t, err)

		end := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)

		totals, err := db.AppendSession(newSession("ayo", "Reading", end, 60))
		require.NoError(t, err)
		assert.Equal(t, int64(60), totals["Reading"])

		totals, err = db.AppendSession(newSession("ayo", "Reading", end.Add(time.Hour), 90))
		require.NoError(t, err)
		assert.Equal(t, int64(150), totals["Reading"])

		stored, err := db.LoadUserTotals("ayo")
		require.NoError(t, err)
		assert.Equal(t, int64(150), stored["Reading"])
	})
}

func TestAppendSessionUnknownCategory(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		db := openStore(t, driver, "ayo")

		_, err := db.AddCategory("Reading")
		require.NoError(t, err)

		_, err = db.AppendSession(newSession("ayo", "Gone", time.Now(), 30))
		assert.ErrorIs(t, err, store.ErrUnknownCategory)

		sessions, err := db.LoadUserSessions("ayo")
		require.NoError(t, err)
		assert.Empty(t, sessions)

		totals, err := db.LoadUserTotals("ayo")
		require.NoError(t, err)
		assert.Equal(t, models.Totals{"Reading": 0}, totals)
	})
}

func TestTotalsAreKeptPerUser(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		db := openStore(t, driver, "ayo", "bola")

		_, err := db.AddCategory("Writing")
		require.NoError(t, err)

		end := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)

		_, err = db.AppendSession(newSession("ayo", "Writing", end, 100))
		require.NoError(t, err)

		_, err = db.AppendSession(newSession("bola", "Writing", end, 40))
		require.NoError(t, err)

		ayo, err := db.LoadUserTotals("ayo")
		require.NoError(t, err)

		bola, err := db.LoadUserTotals("bola")
		require.NoError(t, err)

		assert.Equal(t, int64(100), ayo["Writing"])
		assert.Equal(t, int64(40), bola["Writing"])

		sessions, err := db.LoadUserSessions("bola")
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "bola", sessions[0].UserID)
	})
}

func TestAppendSessionForUnregisteredUser(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		db := openStore(t, driver)

		_, err := db.AddCategory("Reading")
		require.NoError(t, err)

		totals, err := db.AppendSession(newSession("guest", "Reading", time.Now(), 25))
		require.NoError(t, err)
		assert.Equal(t, models.Totals{"Reading": 25}, totals)
	})
}

func TestLoadUserSessionsOrder(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		db := openStore(t, driver, "ayo")

		_, err := db.AddCategory("Reading")
		require.NoError(t, err)

		ends := []time.Time{
			time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local),
			time.Date(2024, 5, 2, 8, 0, 0, 0, time.Local),
			time.Date(2024, 5, 1, 17, 0, 0, 0, time.Local),
		}

		for _, end := range ends {
			_, err = db.AppendSession(newSession("ayo", "Reading", end, 600))
			require.NoError(t, err)
		}

		sessions, err := db.LoadUserSessions("ayo")
		require.NoError(t, err)
		require.Len(t, sessions, 3)

		assert.True(t, sessions[0].EndTime.Equal(ends[1]))
		assert.True(t, sessions[1].EndTime.Equal(ends[2]))
		assert.True(t, sessions[2].EndTime.Equal(ends[0]))

		assert.Equal(t, "Reading", sessions[0].Category)
		assert.Equal(t, int64(600), sessions[0].DurationSeconds)
		assert.Equal(t, "00 : 00 : 10 : 00", sessions[0].Duration())
		assert.Equal(t, 80, sessions[0].Efficiency)
		assert.Equal(t, "notes", sessions[0].WorkDone)
	})
}

func TestBackfillTotalsOnReopen(t *testing.T) {
	forEachDriver(t, func(t *testing.T, driver string) {
		path := filepath.Join(t.TempDir(), "tally.db")

		db, err := store.Open(driver, path, store.WithUsers("ayo"))
		require.NoError(t, err)

		_, err = db.AddCategory("Reading")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db, err = store.Open(driver, path, store.WithUsers("ayo", "chidi"))
		require.NoError(t, err)

		defer db.Close()

		totals, err := db.LoadUserTotals("chidi")
		require.NoError(t, err)
		assert.Equal(t, models.Totals{"Reading": 0}, totals)
	})
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := store.Open("postgres", filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}

package repositories_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appointment-prep-service/internal/adapters/repositories"
	"appointment-prep-service/internal/domain"
	"appointment-prep-service/internal/testutil"
)

func saveAppointment(t *testing.T, database *sql.DB, id string) {
	t.Helper()

	repo := repositories.NewSQLiteAppointmentRepo(database)
	err := repo.Save(context.Background(), &domain.Appointment{
		ID:          id,
		Day:         domain.DayWed,
		TimeSlot:    domain.SlotEvening,
		DurationMin: 60,
		CreatedAt:   1000,
	})
	require.NoError(t, err)
}

func savePrep(t *testing.T, database *sql.DB, id, appointmentID string, preparedAt int64) {
	t.Helper()

	repo := repositories.NewSQLitePrepRepo(database)
	err := repo.Save(context.Background(), &domain.Prep{
		ID:            id,
		AppointmentID: appointmentID,
		TravelMode:    domain.ModeCar,
		Origin:        domain.Coordinates{Lat: 37.5, Lng: 127.0},
		PreparedAt:    preparedAt,
	})
	require.NoError(t, err)
}

func TestAppointmentRepoRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repositories.NewSQLiteAppointmentRepo(database)

	ap, err := domain.NewAppointment(domain.DayFri, domain.SlotMorning, 45)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), ap))

	got, err := repo.GetByID(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, ap, got)
}

func TestAppointmentRepoGetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repositories.NewSQLiteAppointmentRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPrepRepoLatestPicksNewestTimestamp(t *testing.T) {
	database := testutil.NewTestDB(t)
	saveAppointment(t, database, "ap-1")
	savePrep(t, database, "prep-old", "ap-1", 1000)
	savePrep(t, database, "prep-new", "ap-1", 2000)
	savePrep(t, database, "prep-mid", "ap-1", 1500)

	got, err := repositories.NewSQLitePrepRepo(database).LatestByAppointment(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.Equal(t, "prep-new", got.ID)
	assert.Equal(t, domain.ModeCar, got.TravelMode)
}

func TestPrepRepoLatestBreaksTimestampTieByID(t *testing.T) {
	database := testutil.NewTestDB(t)
	saveAppointment(t, database, "ap-1")
	savePrep(t, database, "prep-a", "ap-1", 1000)
	savePrep(t, database, "prep-b", "ap-1", 1000)

	got, err := repositories.NewSQLitePrepRepo(database).LatestByAppointment(context.Background(), "ap-1")
	require.NoError(t, err)
	assert.Equal(t, "prep-b", got.ID)
}

func TestPrepRepoLatestMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	saveAppointment(t, database, "ap-1")

	_, err := repositories.NewSQLitePrepRepo(database).LatestByAppointment(context.Background(), "ap-1")
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCandidateRepoListOrderedAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	saveAppointment(t, database, "ap-1")
	savePrep(t, database, "prep-1", "ap-1", 1000)
	savePrep(t, database, "prep-2", "ap-1", 2000)

	repo := repositories.NewSQLiteCandidateRepo(database)

	// Insert out of order; the list query restores order_index order.
	for _, idx := range []int{2, 0, 1} {
		c := domain.NewCandidate(
			"prep-1", idx,
			domain.Coordinates{Lat: 37.5, Lng: 127.0},
			[]string{"40 min · one easy stop", "20 min · note it down and wrap up"},
			"walk ~12 min",
			[]domain.TravelLine{{Label: "walk", Min: 12}},
			12,
		)
		require.NoError(t, repo.Save(context.Background(), c))
	}
	other := domain.NewCandidate(
		"prep-2", 0,
		domain.Coordinates{Lat: 37.6, Lng: 127.1},
		[]string{"a", "b"},
		"drive ~9 min",
		[]domain.TravelLine{{Label: "drive", Min: 9}, {Label: "park and walk", Min: 8}},
		17,
	)
	require.NoError(t, repo.Save(context.Background(), other))

	got, err := repo.ListByPrepOrdered(context.Background(), "prep-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, c := range got {
		assert.Equal(t, i, c.OrderIndex)
		assert.Equal(t, "prep-1", c.PrepID)
		assert.Equal(t, []domain.TravelLine{{Label: "walk", Min: 12}}, c.TravelLines)
	}

	require.NoError(t, repo.DeleteByPrep(context.Background(), "prep-1"))

	got, err = repo.ListByPrepOrdered(context.Background(), "prep-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	// The other prep's candidates are untouched.
	kept, err := repo.ListByPrepOrdered(context.Background(), "prep-2")
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, other.ID, kept[0].ID)
}

func TestPoiRepoListsOnlyActive(t *testing.T) {
	database := testutil.NewTestDB(t)

	active := true
	inactive := false
	seeds := []repositories.PoiSeed{
		{ID: "poi-on", Lat: 37.50, Lng: 127.00, Active: &active},
		{ID: "poi-off", Lat: 37.51, Lng: 127.01, Active: &inactive},
		{ID: "poi-default", Lat: 37.52, Lng: 127.02}, // nil means active
	}
	require.NoError(t, repositories.SeedPois(database, seeds))

	got, err := repositories.NewSQLitePoiRepo(database).ListActive(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	ids := []string{got[0].ID, got[1].ID}
	assert.ElementsMatch(t, []string{"poi-on", "poi-default"}, ids)
	for _, p := range got {
		assert.True(t, p.Active)
	}
}

func TestSeedPoisUpsertsExistingRows(t *testing.T) {
	database := testutil.NewTestDB(t)

	require.NoError(t, repositories.SeedPois(database, []repositories.PoiSeed{
		{ID: "poi-1", Lat: 37.50, Lng: 127.00},
	}))
	require.NoError(t, repositories.SeedPois(database, []repositories.PoiSeed{
		{ID: "poi-1", Lat: 38.00, Lng: 128.00},
	}))

	got, err := repositories.NewSQLitePoiRepo(database).ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 38.00, got[0].Lat, 1e-9)
}

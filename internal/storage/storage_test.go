package storage

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jonstaff/OneRepMax/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	st, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func lift(exercise string, weight float32, reps int, est float32, at time.Time) models.Lift {
	return models.Lift{
		Exercise:     exercise,
		Weight:       weight,
		Reps:         reps,
		PerformedAt:  at,
		Formula:      "epley",
		Estimated1RM: est,
	}
}

func TestDriverFor(t *testing.T) {
	assert.Equal(t, "libsql", driverFor("libsql://lifts.turso.io?authToken=x"))
	assert.Equal(t, "libsql", driverFor("https://lifts.turso.io"))
	assert.Equal(t, "libsql", driverFor("wss://lifts.turso.io"))
	assert.Equal(t, "sqlite3", driverFor("file:./local.db"))
	assert.Equal(t, "sqlite3", driverFor(":memory:"))
	assert.Equal(t, "sqlite3", driverFor("/tmp/lifts.db"))
}

func TestLocalPathAndRedact(t *testing.T) {
	assert.Equal(t, "/tmp/a/lifts.db", localPath("file:/tmp/a/lifts.db?cache=shared"))
	assert.Equal(t, "", localPath(":memory:"))
	assert.Equal(t, "", localPath("file::memory:"))
	assert.Equal(t, "libsql://lifts.turso.io", redact("libsql://lifts.turso.io?authToken=secret"))
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	st, err := Open(context.Background(), "file:"+filepath.Join(dir, "lifts.db"))
	require.NoError(t, err)
	defer st.Close()

	_, err = os.Stat(filepath.Join(dir, "lifts.db"))
	assert.NoError(t, err)
}

func TestSaveAndListLifts(t *testing.T) {
	ctx := context.Background()
	st := openTest(t)
	day := time.Date(2024, 3, 11, 18, 0, 0, 0, time.UTC)

	saved, err := st.SaveLift(ctx, lift("Squat", 100, 5, 116.67, day))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	_, err = st.SaveLift(ctx, lift("squat", 110, 3, 121, day.Add(48*time.Hour)))
	require.NoError(t, err)
	_, err = st.SaveLift(ctx, lift("Bench", 80, 8, 101.33, day.Add(24*time.Hour)))
	require.NoError(t, err)

	all, err := st.ListLifts(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, float32(110), all[0].Weight)
	assert.Equal(t, "Bench", all[1].Exercise)

	squats, err := st.ListLifts(ctx, "SQUAT", 0)
	require.NoError(t, err)
	require.Len(t, squats, 2)
	assert.Equal(t, float32(121), squats[0].Estimated1RM)
	assert.True(t, day.Equal(squats[1].PerformedAt))
	assert.Equal(t, saved.ID, squats[1].ID)

	limited, err := st.ListLifts(ctx, "squat", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	exists, err := st.ExerciseExists(ctx, "bench")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = st.ExerciseExists(ctx, "deadlift")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSaveLiftDefaultsTimestamp(t *testing.T) {
	st := openTest(t)
	before := time.Now().Add(-time.Second)

	saved, err := st.SaveLift(context.Background(), lift("Row", 60, 10, 80, time.Time{}))
	require.NoError(t, err)
	assert.True(t, saved.PerformedAt.After(before))
	assert.Equal(t, time.UTC, saved.PerformedAt.Location())
}

func TestSaveLiftInvalid(t *testing.T) {
	ctx := context.Background()
	st := openTest(t)

	_, err := st.SaveLift(ctx, lift("", 100, 5, 116, time.Now()))
	assert.ErrorIs(t, err, ErrInvalidLift)

	_, err = st.SaveLift(ctx, lift("Squat", 100, 37, float32(math.Inf(1)), time.Now()))
	assert.ErrorIs(t, err, ErrInvalidLift)

	_, err = st.SaveLift(ctx, lift("Squat", 100, -1, float32(math.NaN()), time.Now()))
	assert.ErrorIs(t, err, ErrInvalidLift)

	all, err := st.ListLifts(ctx, "", 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBestLift(t *testing.T) {
	ctx := context.Background()
	st := openTest(t)
	now := time.Now()

	_, err := st.BestLift(ctx, "Deadlift")
	assert.ErrorIs(t, err, ErrNotFound)

	for _, l := range []models.Lift{
		lift("Deadlift", 180, 5, 210, now.Add(-72*time.Hour)),
		lift("Deadlift", 190, 3, 209, now.Add(-24*time.Hour)),
		lift("Deadlift", 170, 8, 215.3, now.Add(-48*time.Hour)),
		lift("Squat", 200, 1, 200, now),
	} {
		_, err := st.SaveLift(ctx, l)
		require.NoError(t, err)
	}

	best, err := st.BestLift(ctx, "deadlift")
	require.NoError(t, err)
	assert.Equal(t, float32(170), best.Weight)
	assert.Equal(t, 8, best.Reps)
}

func TestDeleteLiftAndExercises(t *testing.T) {
	ctx := context.Background()
	st := openTest(t)

	a, err := st.SaveLift(ctx, lift("Press", 50, 5, 58.3, time.Now()))
	require.NoError(t, err)
	_, err = st.SaveLift(ctx, lift("Bench", 80, 5, 93.3, time.Now()))
	require.NoError(t, err)

	names, err := st.Exercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bench", "Press"}, names)

	require.NoError(t, st.DeleteLift(ctx, a.ID))
	assert.ErrorIs(t, st.DeleteLift(ctx, a.ID), ErrNotFound)

	names, err = st.Exercises(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bench"}, names)
}

func TestImportLiftsIsAtomic(t *testing.T) {
	ctx := context.Background()
	st := openTest(t)

	err := st.ImportLifts(ctx, []models.Lift{
		lift("Squat", 100, 5, 116.7, time.Now()),
		lift("", 100, 5, 116.7, time.Now()),
	})
	assert.ErrorIs(t, err, ErrInvalidLift)

	all, err := st.ListLifts(ctx, "", 0)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, st.ImportLifts(ctx, []models.Lift{
		lift("Squat", 100, 5, 116.7, time.Now()),
		lift("Bench", 80, 5, 93.3, time.Time{}),
	}))

	all, err = st.ListLifts(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExportLiftsToTOML(t *testing.T) {
	ctx := context.Background()
	st := openTest(t)
	day := time.Date(2024, 3, 11, 18, 0, 0, 0, time.UTC)

	_, err := st.SaveLift(ctx, lift("Squat", 110, 3, 121, day.Add(time.Hour)))
	require.NoError(t, err)
	l := lift("Squat", 100, 5, 116.7, day)
	l.Notes = "belt"
	_, err = st.SaveLift(ctx, l)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "lifts.toml")
	n, err := st.ExportLiftsToTOML(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var dump models.LiftImport
	_, err = toml.DecodeFile(out, &dump)
	require.NoError(t, err)
	require.Len(t, dump.Lifts, 2)
	assert.Equal(t, float32(100), dump.Lifts[0].Weight)
	assert.Equal(t, "belt", dump.Lifts[0].Notes)
	assert.Equal(t, "epley", dump.Lifts[0].Formula)
	assert.True(t, day.Equal(dump.Lifts[0].Date))
}

func TestExportKeepsInsertOrderWithinSameSecond(t *testing.T) {
	ctx := context.Background()
	st := openTest(t)
	at := time.Date(2024, 3, 11, 18, 0, 0, 0, time.UTC)

	for _, w := range []float32{60, 70, 80} {
		_, err := st.SaveLift(ctx, lift("Bench", w, 5, w*7/6, at))
		require.NoError(t, err)
	}

	out := filepath.Join(t.TempDir(), "lifts.toml")
	n, err := st.ExportLiftsToTOML(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var dump models.LiftImport
	_, err = toml.DecodeFile(out, &dump)
	require.NoError(t, err)
	require.Len(t, dump.Lifts, 3)
	for i, w := range []float32{60, 70, 80} {
		assert.Equal(t, w, dump.Lifts[i].Weight)
	}
}

func TestExportEmpty(t *testing.T) {
	st := openTest(t)
	out := filepath.Join(t.TempDir(), "lifts.toml")
	n, err := st.ExportLiftsToTOML(context.Background(), out)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.FileExists(t, out)
}

package mongostore_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	domain "github.com/nucareers/career-portal/internal/domain/graduate"
	"github.com/nucareers/career-portal/internal/infrastructure/mongostore"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestGraduateStoreInsertChunkIntegration(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI is not set")
	}

	ctx := context.Background()
	client, err := mongostore.Connect(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("portal_test_" + uuid.NewString()[:8])
	t.Cleanup(func() { _ = db.Drop(context.Background()) })

	store := mongostore.NewGraduateStore(db, logrus.New())
	require.NoError(t, store.EnsureIndexes(ctx))

	result, err := store.InsertChunk(ctx, []domain.Graduate{
		{NuID: "k20-0001", FullName: "Alice", NuEmail: "alice@nu.edu.pk", Discipline: "CS", YearOfGraduation: 2020, CGPA: 3.5},
		{NuID: "k20-0001", FullName: "Alice Copy", NuEmail: "alice2@nu.edu.pk", Discipline: "CS", YearOfGraduation: 2020, CGPA: 3.5},
		{NuID: "k20-0002", FullName: "Bob", NuEmail: "alice@nu.edu.pk", Discipline: "EE", YearOfGraduation: 2021, CGPA: 3.0},
		{NuID: "k20-0003", FullName: "Carol", NuEmail: "carol@nu.edu.pk", Discipline: "CS", YearOfGraduation: 2022, CGPA: 3.9},
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Inserted)
	require.Len(t, result.Failures, 2)
	require.Equal(t, domain.KeyNuID, result.Failures[0].Key)
	require.Equal(t, "k20-0001", result.Failures[0].Value)
	require.Equal(t, domain.KeyNuEmail, result.Failures[1].Key)
	require.Equal(t, "alice@nu.edu.pk", result.Failures[1].Value)

	page, err := store.List(ctx, domain.ListFilter{Page: 1, Limit: 10, Search: "car"})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)

	carol := page.Items[0]
	tagline := "ML engineer"
	updated, err := store.UpdateProfile(ctx, carol.ID, domain.ProfilePatch{Tagline: &tagline})
	require.NoError(t, err)
	require.Equal(t, tagline, updated.Tagline)

	require.NoError(t, store.Delete(ctx, carol.ID))
	_, err = store.GetByID(ctx, carol.ID)
	require.ErrorIs(t, err, domain.ErrGraduateNotFound)

	_, err = store.GetByID(ctx, "zzz")
	require.ErrorIs(t, err, domain.ErrInvalidGraduateID)
}

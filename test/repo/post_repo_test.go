package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atendemei/painel/internal/model"
	appErr "github.com/atendemei/painel/internal/pkg/errors"
	"github.com/atendemei/painel/internal/repo"
	"github.com/atendemei/painel/test/testutil"
)

func seedPost(t *testing.T, posts *repo.PostRepo, title, date, image string) int64 {
	t.Helper()
	id, err := posts.Create(context.Background(), &model.Post{
		Title:   title,
		Resume:  "resume of " + title,
		Content: "content of " + title,
		Image:   image,
		Author:  "editor",
		Date:    date,
	})
	require.NoError(t, err)
	return id
}

func TestPostRepoListOrder(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	posts := repo.NewPostRepo(conn)
	ctx := context.Background()

	first := seedPost(t, posts, "january first", "2025-01-01", "")
	second := seedPost(t, posts, "march", "2025-03-01", "")
	third := seedPost(t, posts, "january second", "2025-01-01", "")

	list, err := posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// date desc, then id desc within the same date
	require.Equal(t, []int64{second, third, first}, []int64{list[0].ID, list[1].ID, list[2].ID})
	// summaries carry no content column at all
	require.Equal(t, "resume of march", list[0].Resume)
}

func TestPostRepoGetAndUpdate(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	posts := repo.NewPostRepo(conn)
	ctx := context.Background()

	id := seedPost(t, posts, "original", "2025-05-01", "/uploads/1-aa.png")

	got, err := posts.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "original", got.Title)
	require.Equal(t, "/uploads/1-aa.png", got.Image)

	image, err := posts.GetImage(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "/uploads/1-aa.png", image)

	got.Title = "edited"
	require.NoError(t, posts.Update(ctx, got))
	again, err := posts.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "edited", again.Title)

	_, err = posts.GetByID(ctx, 999999)
	require.ErrorIs(t, err, appErr.ErrNotFound)
	_, err = posts.GetImage(ctx, 999999)
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestPostRepoDeleteUnknownIsNotFound(t *testing.T) {
	conn, cleanup := testutil.OpenTestDB(t)
	defer cleanup()
	posts := repo.NewPostRepo(conn)
	ctx := context.Background()

	id := seedPost(t, posts, "to delete", "2025-02-02", "")
	require.NoError(t, posts.Delete(ctx, id))
	require.ErrorIs(t, posts.Delete(ctx, id), appErr.ErrNotFound)
	require.ErrorIs(t, posts.Update(ctx, &model.Post{ID: id, Title: "x", Date: "2025-02-02"}), appErr.ErrNotFound)
}

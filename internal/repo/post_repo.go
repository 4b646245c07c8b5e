package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/atendemei/painel/internal/model"
	"github.com/atendemei/painel/internal/pkg/dbutil"
	appErr "github.com/atendemei/painel/internal/pkg/errors"
)

type PostRepo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{db: db}
}

var postFields = []string{"id", "title", "resume", "content", "image", "author", "date"}

// List returns summaries only, newest first. The date column is a YYYY-MM-DD
// string, so lexical descending order is chronological descending order; ids
// break ties so that the most recently created post of a day comes first.
func (r *PostRepo) List(ctx context.Context) ([]model.PostSummary, error) {
	where := map[string]interface{}{
		"_orderby": "date desc, id desc",
	}
	sqlStr, args, err := builder.BuildSelect("posts", where, []string{"id", "title", "resume", "image", "author", "date"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	posts := make([]model.PostSummary, 0)
	for rows.Next() {
		var p model.PostSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.Resume, &p.Image, &p.Author, &p.Date); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepo) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	where := map[string]interface{}{"id": id}
	sqlStr, args, err := builder.BuildSelect("posts", where, postFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var p model.Post
	if err := rows.Scan(&p.ID, &p.Title, &p.Resume, &p.Content, &p.Image, &p.Author, &p.Date); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetImage reads only the stored image reference; the update path uses it to
// carry the old reference forward when no replacement is uploaded.
func (r *PostRepo) GetImage(ctx context.Context, id int64) (string, error) {
	row := r.db.QueryRowContext(ctx, "SELECT image FROM posts WHERE id = $1", id)
	var image string
	if err := row.Scan(&image); err != nil {
		if err == sql.ErrNoRows {
			return "", appErr.ErrNotFound
		}
		return "", err
	}
	return image, nil
}

// Create returns the generated id. gendry's BuildInsert cannot express
// RETURNING, so this one stays raw SQL.
func (r *PostRepo) Create(ctx context.Context, post *model.Post) (int64, error) {
	row := r.db.QueryRowContext(ctx,
		"INSERT INTO posts (title, resume, content, image, author, date) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		post.Title, post.Resume, post.Content, post.Image, post.Author, post.Date)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostRepo) Update(ctx context.Context, post *model.Post) error {
	where := map[string]interface{}{"id": post.ID}
	update := map[string]interface{}{
		"title":   post.Title,
		"resume":  post.Resume,
		"content": post.Content,
		"image":   post.Image,
		"author":  post.Author,
		"date":    post.Date,
	}
	sqlStr, args, err := builder.BuildUpdate("posts", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	where := map[string]interface{}{"id": id}
	sqlStr, args, err := builder.BuildDelete("posts", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

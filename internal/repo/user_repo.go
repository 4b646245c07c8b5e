package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/atendemei/painel/internal/model"
	"github.com/atendemei/painel/internal/pkg/dbutil"
	appErr "github.com/atendemei/painel/internal/pkg/errors"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

var userFields = []string{"id", "username", "password_hash", "email"}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOne(ctx, map[string]interface{}{"username": username})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, map[string]interface{}{"email": email})
}

func (r *UserRepo) getOne(ctx context.Context, where map[string]interface{}) (*model.User, error) {
	sqlStr, args, err := builder.BuildSelect("users", where, userFields)
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
	var user model.User
	if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email); err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert creates the seed account or refreshes its credentials when it
// already exists, keyed by username.
func (r *UserRepo) Upsert(ctx context.Context, user *model.User) error {
	existing, err := r.GetByUsername(ctx, user.Username)
	if err == appErr.ErrNotFound {
		data := map[string]interface{}{
			"username":      user.Username,
			"password_hash": user.PasswordHash,
			"email":         user.Email,
		}
		sqlStr, args, err := builder.BuildInsert("users", []map[string]interface{}{data})
		if err != nil {
			return err
		}
		sqlStr, args = dbutil.Finalize(sqlStr, args)
		if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
			if dbutil.IsConflict(err) {
				return r.Upsert(ctx, user)
			}
			return err
		}
		return nil
	}
	if err != nil {
		return err
	}
	where := map[string]interface{}{"id": existing.ID}
	update := map[string]interface{}{
		"password_hash": user.PasswordHash,
		"email":         user.Email,
	}
	sqlStr, args, err := builder.BuildUpdate("users", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *UserRepo) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	where := map[string]interface{}{"email": email}
	update := map[string]interface{}{"password_hash": passwordHash}
	sqlStr, args, err := builder.BuildUpdate("users", where, update)
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

package store

import (
	"context"

	"github.com/shubhanshu5320/medium-blog-backend/internal/db"
)

type PostStore interface {
	CreatePost(ctx context.Context, arg db.CreatePostParams) (db.Post, error)
	UpdatePost(ctx context.Context, arg db.UpdatePostParams) (db.Post, error)
	ListPostsWithAuthor(ctx context.Context) ([]db.ListPostsWithAuthorRow, error)
	GetPostWithAuthor(ctx context.Context, id int64) (db.GetPostWithAuthorRow, error)
}

type SQLPostStore struct {
	*db.Queries
}

func NewPostStore(db *db.Queries) PostStore {
	return &SQLPostStore{
		Queries: db,
	}
}

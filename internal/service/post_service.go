package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/atendemei/painel/internal/filestore"
	"github.com/atendemei/painel/internal/model"
	"github.com/atendemei/painel/internal/repo"
)

type PostInput struct {
	Title   string
	Resume  string
	Content string
	Author  string
	Date    string
}

// PostDetail is the full-post view: the stored fields plus the rendered
// body. ContentHTML is derived on read and never persisted.
type PostDetail struct {
	model.Post
	ContentHTML string `json:"content_html"`
}

type PostService struct {
	posts *repo.PostRepo
	store filestore.Store
	md    goldmark.Markdown
}

func NewPostService(posts *repo.PostRepo, store filestore.Store) *PostService {
	return &PostService{posts: posts, store: store, md: goldmark.New()}
}

func (s *PostService) List(ctx context.Context) ([]model.PostSummary, error) {
	return s.posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id int64) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: *post, ContentHTML: s.render(post.Content)}, nil
}

// Create stores the image first so a failed upload never leaves a post
// pointing at nothing. No image means an empty reference.
func (s *PostService) Create(ctx context.Context, input PostInput, image *multipart.FileHeader) (int64, error) {
	imageRef := ""
	if image != nil {
		ref, err := s.saveImage(ctx, image)
		if err != nil {
			return 0, err
		}
		imageRef = ref
	}
	return s.posts.Create(ctx, &model.Post{
		Title:   input.Title,
		Resume:  input.Resume,
		Content: input.Content,
		Image:   imageRef,
		Author:  input.Author,
		Date:    input.Date,
	})
}

// Update carries the stored image reference forward when no replacement was
// uploaded: read-before-write, so an update without an image never clears
// one. The read and the write are not one transaction; a concurrent delete
// in between makes the write a no-op reported as not found.
func (s *PostService) Update(ctx context.Context, id int64, input PostInput, image *multipart.FileHeader) error {
	var imageRef string
	if image != nil {
		ref, err := s.saveImage(ctx, image)
		if err != nil {
			return err
		}
		imageRef = ref
	} else {
		prev, err := s.posts.GetImage(ctx, id)
		if err != nil {
			return err
		}
		imageRef = prev
	}
	return s.posts.Update(ctx, &model.Post{
		ID:      id,
		Title:   input.Title,
		Resume:  input.Resume,
		Content: input.Content,
		Image:   imageRef,
		Author:  input.Author,
		Date:    input.Date,
	})
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	return s.posts.Delete(ctx, id)
}

func (s *PostService) saveImage(ctx context.Context, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	key := buildFileKey(header.Filename)
	if err := s.store.Save(ctx, key, file, header.Size); err != nil {
		return "", err
	}
	return s.store.URL(key), nil
}

func (s *PostService) render(source string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return buf.String()
}

// buildFileKey: millisecond timestamp plus a random suffix plus the original
// extension, collision-resistant without coordination.
func buildFileKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomHex(4), ext)
}

func randomHex(size int) string {
	buf := make([]byte, size)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

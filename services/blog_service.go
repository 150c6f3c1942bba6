package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blogging-api/dto"
	"blogging-api/models"
	"blogging-api/readingtime"
	"blogging-api/repositories"
)

var (
	ErrBlogNotFound  = errors.New("blog not found")
	ErrNotOwner      = errors.New("not authorized")
	ErrTitleTaken    = errors.New("title already taken")
	ErrMissingFields = errors.New("title and body are required")
)

// BlogStore is the persistence surface the service needs from the blog
// collection. *repositories.BlogRepository implements it; tests supply
// in-memory fakes.
type BlogStore interface {
	Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	List(ctx context.Context, opt repositories.ListBlogsOptions) ([]models.Blog, int64, error)
	TitleExists(ctx context.Context, title string) (bool, error)
	Save(ctx context.Context, b *models.Blog) error
	IncrementReadCount(ctx context.Context, id primitive.ObjectID) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// UserStore is the slice of the user collection the blog service needs for
// author search and population.
type UserStore interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	SearchByName(ctx context.Context, q string) ([]models.User, error)
}

// BlogService encapsulates the blog lifecycle and listing logic.
type BlogService struct {
	blogs BlogStore
	users UserStore
}

func NewBlogService(blogs BlogStore, users UserStore) *BlogService {
	return &BlogService{blogs: blogs, users: users}
}

type ListBlogsInput struct {
	Page    int
	Limit   int
	Search  string
	State   string
	OrderBy string
}

// List returns one page of the public listing. The base filter is
// state=published; an explicit state parameter overrides it, so drafts are
// reachable through the public listing when asked for. Search is resolved
// in two phases: users matching the term by name first, then blogs by
// title, tags, or that author set.
func (s *BlogService) List(ctx context.Context, in ListBlogsInput) (*dto.BlogPage[dto.BlogDTO], error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 20
	}

	opt := repositories.ListBlogsOptions{
		Page:    in.Page,
		Limit:   in.Limit,
		State:   models.StatePublished,
		OrderBy: in.OrderBy,
	}
	if in.State != "" {
		opt.State = in.State
	}
	if in.Search != "" {
		matched, err := s.users.SearchByName(ctx, in.Search)
		if err != nil {
			return nil, err
		}
		ids := make([]primitive.ObjectID, 0, len(matched))
		for _, u := range matched {
			ids = append(ids, u.ID)
		}
		opt.Search = in.Search
		opt.AuthorIn = ids
	}

	blogs, total, err := s.blogs.List(ctx, opt)
	if err != nil {
		return nil, err
	}

	authors, err := s.loadAuthors(ctx, blogs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BlogDTO, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, dto.NewBlogDTO(b, authors[b.Author]))
	}
	return &dto.BlogPage[dto.BlogDTO]{
		Blogs:       out,
		TotalPages:  totalPages(total, in.Limit),
		CurrentPage: in.Page,
	}, nil
}

type ListOwnBlogsInput struct {
	Page  int
	Limit int
	State string
}

// ListOwn returns the acting principal's own blogs, drafts included,
// newest first. No search and no author population on this path.
func (s *BlogService) ListOwn(ctx context.Context, principalID string, in ListOwnBlogsInput) (*dto.BlogPage[models.Blog], error) {
	author, err := primitive.ObjectIDFromHex(principalID)
	if err != nil {
		return nil, err
	}
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 20
	}

	opt := repositories.ListBlogsOptions{
		Page:    in.Page,
		Limit:   in.Limit,
		Author:  &author,
		State:   in.State,
		OrderBy: repositories.OrderByTimestamp,
	}
	blogs, total, err := s.blogs.List(ctx, opt)
	if err != nil {
		return nil, err
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	return &dto.BlogPage[models.Blog]{
		Blogs:       blogs,
		TotalPages:  totalPages(total, in.Limit),
		CurrentPage: in.Page,
	}, nil
}

// GetPublic returns a single published blog and counts the read. Drafts
// and missing ids are deliberately indistinguishable: both are not found.
func (s *BlogService) GetPublic(ctx context.Context, idHex string) (*dto.BlogDTO, error) {
	blog, err := s.findByHex(ctx, idHex)
	if err != nil {
		return nil, err
	}
	if !blog.IsPublished() {
		return nil, ErrBlogNotFound
	}

	if err := s.blogs.IncrementReadCount(ctx, blog.ID); err != nil {
		return nil, err
	}
	blog.ReadCount++

	authors, err := s.loadAuthors(ctx, []models.Blog{*blog})
	if err != nil {
		return nil, err
	}
	d := dto.NewBlogDTO(*blog, authors[blog.Author])
	return &d, nil
}

type CreateBlogInput struct {
	Title       string
	Description string
	Tags        []string
	Body        string
}

// Create inserts a new draft owned by the acting principal. Title and body
// are required and the title must be globally unique.
func (s *BlogService) Create(ctx context.Context, principalID string, in CreateBlogInput) (*models.Blog, error) {
	author, err := primitive.ObjectIDFromHex(principalID)
	if err != nil {
		return nil, err
	}
	if in.Title == "" || in.Body == "" {
		return nil, ErrMissingFields
	}
	taken, err := s.blogs.TitleExists(ctx, in.Title)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTitleTaken
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	blog := &models.Blog{
		Title:       in.Title,
		Description: in.Description,
		Author:      author,
		State:       models.StateDraft,
		ReadCount:   0,
		ReadingTime: readingtime.Estimate(in.Body),
		Tags:        tags,
		Body:        in.Body,
		Timestamp:   time.Now(),
	}
	id, err := s.blogs.Insert(ctx, blog)
	if err != nil {
		return nil, err
	}
	blog.ID = id
	return blog, nil
}

// Publish moves a blog to the published state. Publishing an already
// published blog is a no-op success.
func (s *BlogService) Publish(ctx context.Context, idHex, principalID string) (*models.Blog, error) {
	blog, err := s.findOwned(ctx, idHex, principalID)
	if err != nil {
		return nil, err
	}

	blog.State = models.StatePublished
	if err := s.blogs.Save(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

type EditBlogInput struct {
	Title       string
	Description string
	Tags        []string
	Body        string
}

// Edit applies the provided fields to an owned blog. Empty values mean
// "no change" — an explicit empty string never overwrites. A new body
// recomputes the reading time.
func (s *BlogService) Edit(ctx context.Context, idHex, principalID string, in EditBlogInput) (*models.Blog, error) {
	blog, err := s.findOwned(ctx, idHex, principalID)
	if err != nil {
		return nil, err
	}

	applyEdit(blog, in)
	if err := s.blogs.Save(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// Delete permanently removes an owned blog.
func (s *BlogService) Delete(ctx context.Context, idHex, principalID string) error {
	blog, err := s.findOwned(ctx, idHex, principalID)
	if err != nil {
		return err
	}
	return s.blogs.DeleteByID(ctx, blog.ID)
}

// applyEdit copies the non-empty fields of in onto blog, keeping the
// reading time in sync with the body.
func applyEdit(blog *models.Blog, in EditBlogInput) {
	if in.Title != "" {
		blog.Title = in.Title
	}
	if in.Description != "" {
		blog.Description = in.Description
	}
	if len(in.Tags) > 0 {
		blog.Tags = in.Tags
	}
	if in.Body != "" {
		blog.Body = in.Body
		blog.ReadingTime = readingtime.Estimate(in.Body)
	}
}

// findByHex loads a blog by id hex, folding malformed ids and missing
// documents into ErrBlogNotFound.
func (s *BlogService) findByHex(ctx context.Context, idHex string) (*models.Blog, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrBlogNotFound
	}
	blog, err := s.blogs.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// findOwned loads a blog and verifies ownership. Not-found is reported
// before authorization, so "exists but not yours" stays distinguishable
// from "doesn't exist".
func (s *BlogService) findOwned(ctx context.Context, idHex, principalID string) (*models.Blog, error) {
	blog, err := s.findByHex(ctx, idHex)
	if err != nil {
		return nil, err
	}
	if !blog.IsOwnedBy(principalID) {
		return nil, ErrNotOwner
	}
	return blog, nil
}

// loadAuthors batch-fetches the distinct authors of a blog page.
func (s *BlogService) loadAuthors(ctx context.Context, blogs []models.Blog) (map[primitive.ObjectID]*models.User, error) {
	seen := map[primitive.ObjectID]bool{}
	ids := make([]primitive.ObjectID, 0, len(blogs))
	for _, b := range blogs {
		if !seen[b.Author] {
			seen[b.Author] = true
			ids = append(ids, b.Author)
		}
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[primitive.ObjectID]*models.User, len(users))
	for i := range users {
		out[users[i].ID] = &users[i]
	}
	return out, nil
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

package dto

import (
	"time"

	"blogging-api/models"
)

// AuthorDTO is the populated author snapshot attached to public blog
// responses: first and last name only.
type AuthorDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// BlogDTO is a blog post with its author populated.
type BlogDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      AuthorDTO `json:"author"`
	State       string    `json:"state"`
	ReadCount   int64     `json:"read_count"`
	ReadingTime int       `json:"reading_time"`
	Tags        []string  `json:"tags"`
	Body        string    `json:"body"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewBlogDTO maps a blog document and its (possibly unknown) author to the
// response shape. A nil author leaves only the id populated.
func NewBlogDTO(b models.Blog, author *models.User) BlogDTO {
	a := AuthorDTO{ID: b.Author.Hex()}
	if author != nil {
		a.FirstName = author.FirstName
		a.LastName = author.LastName
	}
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlogDTO{
		ID:          b.ID.Hex(),
		Title:       b.Title,
		Description: b.Description,
		Author:      a,
		State:       b.State,
		ReadCount:   b.ReadCount,
		ReadingTime: b.ReadingTime,
		Tags:        tags,
		Body:        b.Body,
		Timestamp:   b.Timestamp,
	}
}

// BlogPage is the pagination envelope for blog listings.
// TotalPages is ceil(total matching count / limit); CurrentPage is 1-based.
type BlogPage[T any] struct {
	Blogs       []T   `json:"blogs"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// CreateBlogRequest is the body of POST /api/blogs.
type CreateBlogRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Body        string   `json:"body"`
}

// EditBlogRequest is the body of PUT /api/blogs/:id. Absent or empty
// fields leave the stored value unchanged.
type EditBlogRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Body        string   `json:"body"`
}

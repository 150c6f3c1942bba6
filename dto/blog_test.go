package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogging-api/dto"
	"blogging-api/models"
)

func TestNewBlogDTOPopulatesAuthor(t *testing.T) {
	authorID := primitive.NewObjectID()
	blog := models.Blog{
		ID:     primitive.NewObjectID(),
		Title:  "Post",
		Author: authorID,
		State:  models.StatePublished,
	}
	author := models.User{ID: authorID, FirstName: "Emmanuel", LastName: "Test"}

	d := dto.NewBlogDTO(blog, &author)
	assert.Equal(t, authorID.Hex(), d.Author.ID)
	assert.Equal(t, "Emmanuel", d.Author.FirstName)
	assert.Equal(t, "Test", d.Author.LastName)
}

func TestNewBlogDTOUnknownAuthorKeepsID(t *testing.T) {
	authorID := primitive.NewObjectID()
	d := dto.NewBlogDTO(models.Blog{Author: authorID}, nil)
	assert.Equal(t, authorID.Hex(), d.Author.ID)
	assert.Empty(t, d.Author.FirstName)
}

func TestNewBlogDTONormalizesNilTags(t *testing.T) {
	d := dto.NewBlogDTO(models.Blog{}, nil)
	assert.NotNil(t, d.Tags)
	assert.Empty(t, d.Tags)
}

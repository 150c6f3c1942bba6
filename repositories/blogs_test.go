package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blogging-api/models"
)

func TestBuildListFilterDefaultsToEmpty(t *testing.T) {
	filter := buildListFilter(ListBlogsOptions{})
	assert.Empty(t, filter)
}

func TestBuildListFilterState(t *testing.T) {
	filter := buildListFilter(ListBlogsOptions{State: models.StatePublished})
	assert.Equal(t, bson.M{"state": "published"}, filter)
}

func TestBuildListFilterAuthor(t *testing.T) {
	id := primitive.NewObjectID()
	filter := buildListFilter(ListBlogsOptions{Author: &id, State: models.StateDraft})
	assert.Equal(t, id, filter["author"])
	assert.Equal(t, "draft", filter["state"])
}

func TestBuildListFilterSearchCombinesTitleAuthorsTags(t *testing.T) {
	authorID := primitive.NewObjectID()
	filter := buildListFilter(ListBlogsOptions{
		State:    models.StatePublished,
		Search:   "golang",
		AuthorIn: []primitive.ObjectID{authorID},
	})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 3)

	titleRx, ok := or[0]["title"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "golang", titleRx.Pattern)
	assert.Equal(t, "i", titleRx.Options)

	in, ok := or[1]["author"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, in["$in"], interface{}(authorID))

	tagsRx, ok := or[2]["tags"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "golang", tagsRx.Pattern)

	// state filter survives alongside the search clause
	assert.Equal(t, "published", filter["state"])
}

func TestBuildListFilterSearchEscapesRegexMeta(t *testing.T) {
	filter := buildListFilter(ListBlogsOptions{Search: "c++ (intro)"})
	or := filter["$or"].([]bson.M)
	titleRx := or[0]["title"].(primitive.Regex)
	assert.Equal(t, `c\+\+ \(intro\)`, titleRx.Pattern)
}

func TestBuildListFilterSearchWithNoMatchingAuthors(t *testing.T) {
	// an empty resolved-author set still yields a valid $in clause that
	// matches nothing, leaving title/tags as the only live branches
	filter := buildListFilter(ListBlogsOptions{Search: "nobody"})
	or := filter["$or"].([]bson.M)
	in := or[1]["author"].(bson.M)
	assert.Empty(t, in["$in"])
}

func TestBuildListSortRecognizedFields(t *testing.T) {
	for _, field := range []string{OrderByReadCount, OrderByReadingTime, OrderByTimestamp} {
		sort := buildListSort(field)
		require.Len(t, sort, 1)
		assert.Equal(t, field, sort[0].Key)
		assert.Equal(t, -1, sort[0].Value)
	}
}

func TestBuildListSortUnknownFieldMeansNoSort(t *testing.T) {
	assert.Nil(t, buildListSort(""))
	assert.Nil(t, buildListSort("title"))
	assert.Nil(t, buildListSort("READ_COUNT"))
}

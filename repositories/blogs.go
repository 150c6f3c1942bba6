package repositories

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogging-api/models"
)

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{col: db.Collection("blogs")}
}

// ListBlogsOptions describes a blog listing query. State and Author are
// exact-match filters; Search is combined with AuthorIn into a single $or
// (title, tags, or one of the pre-resolved author ids).
type ListBlogsOptions struct {
	Page     int
	Limit    int
	State    string
	Author   *primitive.ObjectID
	Search   string
	AuthorIn []primitive.ObjectID
	OrderBy  string
}

// Sortable fields accepted by orderBy. Anything else leaves the query
// unsorted and the store returns its natural order.
const (
	OrderByReadCount   = "read_count"
	OrderByReadingTime = "reading_time"
	OrderByTimestamp   = "timestamp"
)

// buildListFilter compiles the options into a bson filter. The search term
// matches the title or any tag case-insensitively as a substring, or an
// author from the set resolved by the preceding user-name lookup.
func buildListFilter(opt ListBlogsOptions) bson.M {
	filter := bson.M{}
	if opt.State != "" {
		filter["state"] = opt.State
	}
	if opt.Author != nil {
		filter["author"] = *opt.Author
	}
	if opt.Search != "" {
		contains := primitive.Regex{Pattern: regexp.QuoteMeta(opt.Search), Options: "i"}
		authorIn := make([]interface{}, 0, len(opt.AuthorIn))
		for _, id := range opt.AuthorIn {
			authorIn = append(authorIn, id)
		}
		filter["$or"] = []bson.M{
			{"title": contains},
			{"author": bson.M{"$in": authorIn}},
			{"tags": contains},
		}
	}
	return filter
}

// buildListSort returns the sort document for a recognized orderBy value,
// or nil when no explicit sort applies.
func buildListSort(orderBy string) bson.D {
	switch orderBy {
	case OrderByReadCount, OrderByReadingTime, OrderByTimestamp:
		return bson.D{{Key: orderBy, Value: -1}}
	default:
		return nil
	}
}

// List returns one page of blogs plus the total count matching the same
// filter without pagination.
func (r *BlogRepository) List(ctx context.Context, opt ListBlogsOptions) ([]models.Blog, int64, error) {
	filter := buildListFilter(opt)

	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.Limit <= 0 {
		opt.Limit = 20
	}
	skip := int64((opt.Page - 1) * opt.Limit)
	limit := int64(opt.Limit)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit)
	if sort := buildListSort(opt.OrderBy); sort != nil {
		findOpts = findOpts.SetSort(sort)
	}
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Blog
	for cur.Next(ctx) {
		var b models.Blog
		if err := cur.Decode(&b); err != nil {
			return nil, 0, err
		}
		results = append(results, b)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// Insert inserts a new blog document and returns its assigned id.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByID returns a blog by its ObjectID.
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// TitleExists reports whether any blog already uses the given title.
func (r *BlogRepository) TitleExists(ctx context.Context, title string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"title": title}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

// Save replaces the stored document with the given blog.
func (r *BlogRepository) Save(ctx context.Context, b *models.Blog) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	return err
}

// IncrementReadCount atomically increments read_count by 1.
func (r *BlogRepository) IncrementReadCount(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"read_count": 1},
	})
	return err
}

// DeleteByID removes a blog permanently.
func (r *BlogRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

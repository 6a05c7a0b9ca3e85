package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/combo-pricing-service/internal/domain/model"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// MenuItemsRepository stores the menu price catalog.
type MenuItemsRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewMenuItemsRepository creates a new menu items repository.
func NewMenuItemsRepository(db *MongoDB) *MenuItemsRepository {
	return &MenuItemsRepository{
		collection: db.MenuItems,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ParseID converts a hex id into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// FindByID returns a single menu item.
func (r *MenuItemsRepository) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var item model.MenuItem
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("menu item %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDs returns the menu items among ids that exist, in no particular order.
func (r *MenuItemsRepository) FindByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := ParseID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var items []model.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// List returns menu items matching filter, sorted by category then name.
func (r *MenuItemsRepository) List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}).
		SetLimit(int64(clampLimit(filter.Limit)))
	if filter.Skip > 0 {
		findOptions.SetSkip(int64(filter.Skip))
	}

	cursor, err := r.collection.Find(ctx, buildMenuFilter(filter), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	items := make([]model.MenuItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert creates the item when its ID is zero or unknown, otherwise replaces its fields.
func (r *MenuItemsRepository) Upsert(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	now := r.now()

	set := bson.M{
		"name":       item.Name,
		"category":   item.Category,
		"price":      item.Price,
		"available":  item.Available,
		"updated_at": now,
	}
	if item.UpdatedBy != "" {
		set["updated_by"] = item.UpdatedBy
	}

	var saved model.MenuItem
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": item.ID},
		bson.M{"$set": set, "$setOnInsert": bson.M{"created_at": now}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes a menu item.
func (r *MenuItemsRepository) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("menu item %s: %w", id, ErrNotFound)
	}
	return nil
}

func buildMenuFilter(f model.MenuItemFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Available != nil {
		filter["available"] = *f.Available
	}
	if f.Search != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
	}
	return filter
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}

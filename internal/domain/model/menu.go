package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a catalog entry whose price feeds combo original prices.
//
// @Description Menu item price entry
// @Example {"id": "65a1f0c2e4b0a1b2c3d4e5f6", "name": "Paneer Tikka", "category": "starter", "price": 75, "available": true}
type MenuItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" example:"Paneer Tikka"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty" example:"starter"`
	Price     float64            `bson:"price" json:"price" example:"75"`
	Available bool               `bson:"available" json:"available" example:"true"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	UpdatedBy string             `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// MenuItemFilter narrows catalog listings.
type MenuItemFilter struct {
	Category  string
	Search    string
	Available *bool
	Limit     int
	Skip      int
}

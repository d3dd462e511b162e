package domain

import "time"

// PrepItem is one prepped component with its quantity.
type PrepItem struct {
	Name string  `json:"name" bson:"name"`
	Qty  float64 `json:"qty" bson:"qty"`
	Note string  `json:"note,omitempty" bson:"note,omitempty"`
}

// PrepLog records what a cook prepped on a given day.
type PrepLog struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	UserID    string     `json:"user_id" bson:"user_id"`
	Date      time.Time  `json:"date" bson:"date"`
	Items     []PrepItem `json:"items" bson:"items"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

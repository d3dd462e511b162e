package domain

import "time"

// Recipe is a station recipe card. Steps is a single multi-line string so
// cooks can paste markdown straight from their notes.
type Recipe struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Steps     string    `json:"steps" bson:"steps"`
	Station   string    `json:"station" bson:"station"`
	CreatedBy string    `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

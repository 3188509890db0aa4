package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LocationCoordinate caches geocoding results keyed by (city, state, type).
// State-level entries have a null city.
type LocationCoordinate struct {
	ent.Schema
}

// Fields of the LocationCoordinate.
func (LocationCoordinate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("city").
			Optional().
			Nillable(),
		field.String("state"),
		field.Enum("location_type").
			Values("city", "state"),
		field.Float("latitude"),
		field.Float("longitude"),
		field.String("source").
			Optional(),
		field.Float("confidence").
			Default(0),
		field.Time("last_verified").
			Default(time.Now),
	}
}

// Indexes of the LocationCoordinate.
func (LocationCoordinate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("city", "state", "location_type").
			Unique().
			Annotations(entsql.IndexWhere("city IS NOT NULL")),
		index.Fields("state", "location_type").
			Unique().
			Annotations(entsql.IndexWhere("city IS NULL")),
	}
}

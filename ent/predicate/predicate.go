// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Actor is the predicate function for actor builders.
type Actor func(*sql.Selector)

// ActorUsername is the predicate function for actorusername builders.
type ActorUsername func(*sql.Selector)

// DynamicSlug is the predicate function for dynamicslug builders.
type DynamicSlug func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// EventActorLink is the predicate function for eventactorlink builders.
type EventActorLink func(*sql.Selector)

// EventPostLink is the predicate function for eventpostlink builders.
type EventPostLink func(*sql.Selector)

// LocationCoordinate is the predicate function for locationcoordinate builders.
type LocationCoordinate func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// Post is the predicate function for post builders.
type Post func(*sql.Selector)

// PostActor is the predicate function for postactor builders.
type PostActor func(*sql.Selector)

// PostUnknownActor is the predicate function for postunknownactor builders.
type PostUnknownActor func(*sql.Selector)

// UnknownActor is the predicate function for unknownactor builders.
type UnknownActor func(*sql.Selector)

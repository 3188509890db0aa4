// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/civiclens/civiclens/ent/actor"
	"github.com/civiclens/civiclens/ent/actorusername"
	"github.com/civiclens/civiclens/ent/dynamicslug"
	"github.com/civiclens/civiclens/ent/event"
	"github.com/civiclens/civiclens/ent/eventactorlink"
	"github.com/civiclens/civiclens/ent/eventpostlink"
	"github.com/civiclens/civiclens/ent/locationcoordinate"
	"github.com/civiclens/civiclens/ent/pipelinerun"
	"github.com/civiclens/civiclens/ent/post"
	"github.com/civiclens/civiclens/ent/postactor"
	"github.com/civiclens/civiclens/ent/postunknownactor"
	"github.com/civiclens/civiclens/ent/schema"
	"github.com/civiclens/civiclens/ent/unknownactor"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actorFields := schema.Actor{}.Fields()
	_ = actorFields
	// actorDescCreatedAt is the schema descriptor for created_at field.
	actorDescCreatedAt := actorFields[7].Descriptor()
	// actor.DefaultCreatedAt holds the default value on creation for the created_at field.
	actor.DefaultCreatedAt = actorDescCreatedAt.Default.(func() time.Time)
	// actorDescID is the schema descriptor for id field.
	actorDescID := actorFields[0].Descriptor()
	// actor.DefaultID holds the default value on creation for the id field.
	actor.DefaultID = actorDescID.Default.(func() string)
	actorusernameFields := schema.ActorUsername{}.Fields()
	_ = actorusernameFields
	// actorusernameDescShouldScrape is the schema descriptor for should_scrape field.
	actorusernameDescShouldScrape := actorusernameFields[4].Descriptor()
	// actorusername.DefaultShouldScrape holds the default value on creation for the should_scrape field.
	actorusername.DefaultShouldScrape = actorusernameDescShouldScrape.Default.(bool)
	// actorusernameDescID is the schema descriptor for id field.
	actorusernameDescID := actorusernameFields[0].Descriptor()
	// actorusername.DefaultID holds the default value on creation for the id field.
	actorusername.DefaultID = actorusernameDescID.Default.(func() string)
	dynamicslugFields := schema.DynamicSlug{}.Fields()
	_ = dynamicslugFields
	// dynamicslugDescCreatedAt is the schema descriptor for created_at field.
	dynamicslugDescCreatedAt := dynamicslugFields[4].Descriptor()
	// dynamicslug.DefaultCreatedAt holds the default value on creation for the created_at field.
	dynamicslug.DefaultCreatedAt = dynamicslugDescCreatedAt.Default.(func() time.Time)
	// dynamicslugDescID is the schema descriptor for id field.
	dynamicslugDescID := dynamicslugFields[0].Descriptor()
	// dynamicslug.DefaultID holds the default value on creation for the id field.
	dynamicslug.DefaultID = dynamicslugDescID.Default.(func() string)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescExtractedAt is the schema descriptor for extracted_at field.
	eventDescExtractedAt := eventFields[12].Descriptor()
	// event.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	event.DefaultExtractedAt = eventDescExtractedAt.Default.(func() time.Time)
	// eventDescVerified is the schema descriptor for verified field.
	eventDescVerified := eventFields[13].Descriptor()
	// event.DefaultVerified holds the default value on creation for the verified field.
	event.DefaultVerified = eventDescVerified.Default.(bool)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[19].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventFields[20].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// eventDescID is the schema descriptor for id field.
	eventDescID := eventFields[0].Descriptor()
	// event.DefaultID holds the default value on creation for the id field.
	event.DefaultID = eventDescID.Default.(func() string)
	eventactorlinkFields := schema.EventActorLink{}.Fields()
	_ = eventactorlinkFields
	// eventactorlinkDescCreatedAt is the schema descriptor for created_at field.
	eventactorlinkDescCreatedAt := eventactorlinkFields[7].Descriptor()
	// eventactorlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	eventactorlink.DefaultCreatedAt = eventactorlinkDescCreatedAt.Default.(func() time.Time)
	// eventactorlinkDescID is the schema descriptor for id field.
	eventactorlinkDescID := eventactorlinkFields[0].Descriptor()
	// eventactorlink.DefaultID holds the default value on creation for the id field.
	eventactorlink.DefaultID = eventactorlinkDescID.Default.(func() string)
	eventpostlinkFields := schema.EventPostLink{}.Fields()
	_ = eventpostlinkFields
	// eventpostlinkDescCreatedAt is the schema descriptor for created_at field.
	eventpostlinkDescCreatedAt := eventpostlinkFields[3].Descriptor()
	// eventpostlink.DefaultCreatedAt holds the default value on creation for the created_at field.
	eventpostlink.DefaultCreatedAt = eventpostlinkDescCreatedAt.Default.(func() time.Time)
	// eventpostlinkDescID is the schema descriptor for id field.
	eventpostlinkDescID := eventpostlinkFields[0].Descriptor()
	// eventpostlink.DefaultID holds the default value on creation for the id field.
	eventpostlink.DefaultID = eventpostlinkDescID.Default.(func() string)
	locationcoordinateFields := schema.LocationCoordinate{}.Fields()
	_ = locationcoordinateFields
	// locationcoordinateDescConfidence is the schema descriptor for confidence field.
	locationcoordinateDescConfidence := locationcoordinateFields[7].Descriptor()
	// locationcoordinate.DefaultConfidence holds the default value on creation for the confidence field.
	locationcoordinate.DefaultConfidence = locationcoordinateDescConfidence.Default.(float64)
	// locationcoordinateDescLastVerified is the schema descriptor for last_verified field.
	locationcoordinateDescLastVerified := locationcoordinateFields[8].Descriptor()
	// locationcoordinate.DefaultLastVerified holds the default value on creation for the last_verified field.
	locationcoordinate.DefaultLastVerified = locationcoordinateDescLastVerified.Default.(func() time.Time)
	// locationcoordinateDescID is the schema descriptor for id field.
	locationcoordinateDescID := locationcoordinateFields[0].Descriptor()
	// locationcoordinate.DefaultID holds the default value on creation for the id field.
	locationcoordinate.DefaultID = locationcoordinateDescID.Default.(func() string)
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescIncludeInstagram is the schema descriptor for include_instagram field.
	pipelinerunDescIncludeInstagram := pipelinerunFields[2].Descriptor()
	// pipelinerun.DefaultIncludeInstagram holds the default value on creation for the include_instagram field.
	pipelinerun.DefaultIncludeInstagram = pipelinerunDescIncludeInstagram.Default.(bool)
	// pipelinerunDescCancelRequested is the schema descriptor for cancel_requested field.
	pipelinerunDescCancelRequested := pipelinerunFields[5].Descriptor()
	// pipelinerun.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	pipelinerun.DefaultCancelRequested = pipelinerunDescCancelRequested.Default.(bool)
	// pipelinerunDescCreatedAt is the schema descriptor for created_at field.
	pipelinerunDescCreatedAt := pipelinerunFields[8].Descriptor()
	// pipelinerun.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinerun.DefaultCreatedAt = pipelinerunDescCreatedAt.Default.(func() time.Time)
	// pipelinerunDescID is the schema descriptor for id field.
	pipelinerunDescID := pipelinerunFields[0].Descriptor()
	// pipelinerun.DefaultID holds the default value on creation for the id field.
	pipelinerun.DefaultID = pipelinerunDescID.Default.(func() string)
	postFields := schema.Post{}.Fields()
	_ = postFields
	// postDescLikeCount is the schema descriptor for like_count field.
	postDescLikeCount := postFields[10].Descriptor()
	// post.DefaultLikeCount holds the default value on creation for the like_count field.
	post.DefaultLikeCount = postDescLikeCount.Default.(int)
	// postDescReplyCount is the schema descriptor for reply_count field.
	postDescReplyCount := postFields[11].Descriptor()
	// post.DefaultReplyCount holds the default value on creation for the reply_count field.
	post.DefaultReplyCount = postDescReplyCount.Default.(int)
	// postDescRetweetCount is the schema descriptor for retweet_count field.
	postDescRetweetCount := postFields[12].Descriptor()
	// post.DefaultRetweetCount holds the default value on creation for the retweet_count field.
	post.DefaultRetweetCount = postDescRetweetCount.Default.(int)
	// postDescCommentCount is the schema descriptor for comment_count field.
	postDescCommentCount := postFields[13].Descriptor()
	// post.DefaultCommentCount holds the default value on creation for the comment_count field.
	post.DefaultCommentCount = postDescCommentCount.Default.(int)
	// postDescProcessedForEvents is the schema descriptor for processed_for_events field.
	postDescProcessedForEvents := postFields[16].Descriptor()
	// post.DefaultProcessedForEvents holds the default value on creation for the processed_for_events field.
	post.DefaultProcessedForEvents = postDescProcessedForEvents.Default.(bool)
	// postDescCreatedAt is the schema descriptor for created_at field.
	postDescCreatedAt := postFields[18].Descriptor()
	// post.DefaultCreatedAt holds the default value on creation for the created_at field.
	post.DefaultCreatedAt = postDescCreatedAt.Default.(func() time.Time)
	// postDescID is the schema descriptor for id field.
	postDescID := postFields[0].Descriptor()
	// post.DefaultID holds the default value on creation for the id field.
	post.DefaultID = postDescID.Default.(func() string)
	postactorFields := schema.PostActor{}.Fields()
	_ = postactorFields
	// postactorDescID is the schema descriptor for id field.
	postactorDescID := postactorFields[0].Descriptor()
	// postactor.DefaultID holds the default value on creation for the id field.
	postactor.DefaultID = postactorDescID.Default.(func() string)
	postunknownactorFields := schema.PostUnknownActor{}.Fields()
	_ = postunknownactorFields
	// postunknownactorDescID is the schema descriptor for id field.
	postunknownactorDescID := postunknownactorFields[0].Descriptor()
	// postunknownactor.DefaultID holds the default value on creation for the id field.
	postunknownactor.DefaultID = postunknownactorDescID.Default.(func() string)
	unknownactorFields := schema.UnknownActor{}.Fields()
	_ = unknownactorFields
	// unknownactorDescFirstSeen is the schema descriptor for first_seen field.
	unknownactorDescFirstSeen := unknownactorFields[3].Descriptor()
	// unknownactor.DefaultFirstSeen holds the default value on creation for the first_seen field.
	unknownactor.DefaultFirstSeen = unknownactorDescFirstSeen.Default.(func() time.Time)
	// unknownactorDescLastSeen is the schema descriptor for last_seen field.
	unknownactorDescLastSeen := unknownactorFields[4].Descriptor()
	// unknownactor.DefaultLastSeen holds the default value on creation for the last_seen field.
	unknownactor.DefaultLastSeen = unknownactorDescLastSeen.Default.(func() time.Time)
	// unknownactorDescMentionCount is the schema descriptor for mention_count field.
	unknownactorDescMentionCount := unknownactorFields[5].Descriptor()
	// unknownactor.DefaultMentionCount holds the default value on creation for the mention_count field.
	unknownactor.DefaultMentionCount = unknownactorDescMentionCount.Default.(int)
	// unknownactorDescAuthorCount is the schema descriptor for author_count field.
	unknownactorDescAuthorCount := unknownactorFields[6].Descriptor()
	// unknownactor.DefaultAuthorCount holds the default value on creation for the author_count field.
	unknownactor.DefaultAuthorCount = unknownactorDescAuthorCount.Default.(int)
	// unknownactorDescID is the schema descriptor for id field.
	unknownactorDescID := unknownactorFields[0].Descriptor()
	// unknownactor.DefaultID holds the default value on creation for the id field.
	unknownactor.DefaultID = unknownactorDescID.Default.(func() string)
}

package models

// ActorKind tags the variants of an actor lookup result.
type ActorKind string

// Actor lookup result variants.
const (
	ActorKindPerson       ActorKind = "person"
	ActorKindChapter      ActorKind = "chapter"
	ActorKindOrganization ActorKind = "organization"
	ActorKindUnknown      ActorKind = "unknown"
	ActorKindNotFound     ActorKind = "not_found"
)

// ActorLookup is the tagged result of resolving a (platform, handle) pair.
// For known actors ActorID is set; for unknown actors UnknownActorID is set;
// for not_found both are empty.
type ActorLookup struct {
	Handle         string    `json:"handle"`
	Platform       string    `json:"platform"`
	Kind           ActorKind `json:"type"`
	ActorID        string    `json:"-"`
	UnknownActorID string    `json:"-"`
	Name           string    `json:"name,omitempty"`
	About          string    `json:"about,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Bio            string    `json:"bio,omitempty"`
}

// Known reports whether the lookup resolved to a curated actor.
func (a *ActorLookup) Known() bool {
	switch a.Kind {
	case ActorKindPerson, ActorKindChapter, ActorKindOrganization:
		return true
	}
	return false
}

// ActorLinkRow is an EventActorLink row ready for upsert. Exactly one of
// ActorID / UnknownActorID is non-empty; unknown rows carry the
// "unknown_<uuid>" handle sentinel and platform "unknown" so the
// (event_id, actor_handle, platform) uniqueness key covers both variants.
type ActorLinkRow struct {
	EventID        string
	ActorHandle    string
	Platform       string
	ActorType      string
	ActorID        string
	UnknownActorID string
}

// UnknownHandlePrefix prefixes the synthetic actor_handle stored for
// unknown-actor event links.
const UnknownHandlePrefix = "unknown_"

// UnknownPlatform is the canonical platform value for unknown-actor links.
const UnknownPlatform = "unknown"

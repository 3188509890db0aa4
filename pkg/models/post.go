// Package models defines cross-package data transfer types shared by the
// ingestion, extraction, deduplication, and orchestration components.
// It is deliberately free of ent imports so the ent schemas can reference it.
package models

import "time"

// RawPost is a normalized social-media post ready for insertion.
// All handle fields are lowercased; Timestamp is UTC or nil when the source
// value could not be parsed (such posts never enter an extraction batch).
type RawPost struct {
	Platform          string
	ExternalPostID    string
	AuthorHandle      string
	AuthorDisplayName string
	ContentText       string
	Timestamp         *time.Time
	MediaURLs         []string
	MentionedHandles  []string
	Hashtags          []string
	LikeCount         int
	ReplyCount        int
	RetweetCount      int
	CommentCount      int
	LocationText      string
}

// HasTimestamp reports whether the post carries a usable UTC timestamp.
func (p *RawPost) HasTimestamp() bool {
	return p.Timestamp != nil && !p.Timestamp.IsZero()
}

// Terminal offline_media_url sentinels. A post whose media URLs all return
// 403/404/410 is marked MediaExpired; a second full failure promotes it to
// MediaPermanentlyExpired and it is never fetched again.
const (
	MediaExpired            = "EXPIRED"
	MediaPermanentlyExpired = "PERMANENTLY_EXPIRED"
)

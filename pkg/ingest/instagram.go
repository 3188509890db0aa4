package ingest

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/civiclens/civiclens/pkg/models"
)

// instagramRecord mirrors the scraper's JSON layout. Handles appear either
// top-level or nested under owner; media as an array or a single src_url.
type instagramRecord struct {
	Handle   string `json:"handle"`
	Username string `json:"username"`
	Owner    struct {
		Username string `json:"username"`
	} `json:"owner"`
	Caption        string   `json:"caption"`
	TakenAt        int64    `json:"taken_at"`
	ID             string   `json:"id"`
	PostID         string   `json:"post_id"`
	MediaURLs      []string `json:"media_urls"`
	SrcURL         string   `json:"src_url"`
	MentionedUsers []string `json:"mentioned_users"`
	Hashtags       []string `json:"hashtags"`
	LikeCount      int      `json:"like_count"`
	CommentCount   int      `json:"comment_count"`
	LocationText   string   `json:"location"`
}

func (r *instagramRecord) handle() string {
	for _, h := range []string{r.Handle, r.Username, r.Owner.Username} {
		if h != "" {
			return h
		}
	}
	return ""
}

func (r *instagramRecord) externalID() string {
	if r.ID != "" {
		return r.ID
	}
	return r.PostID
}

func (r *instagramRecord) media() []string {
	if len(r.MediaURLs) > 0 {
		return r.MediaURLs
	}
	if r.SrcURL != "" {
		return []string{r.SrcURL}
	}
	return nil
}

// ParseInstagramJSON converts one scraper JSON file (an array of post
// objects) into normalized posts.
func ParseInstagramJSON(data []byte) ([]*models.RawPost, int, error) {
	var records []instagramRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Some scrape runs emit a single object instead of an array.
		var single instagramRecord
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return nil, 0, fmt.Errorf("decode instagram JSON: %w", err)
		}
		records = []instagramRecord{single}
	}

	var posts []*models.RawPost
	skipped := 0
	for i := range records {
		rec := &records[i]
		content := CleanContent(rec.Caption)
		externalID := CleanExternalID(rec.externalID())
		if content == "" || externalID == "" {
			skipped++
			continue
		}

		hashtags := ParseHashtags(strings.Join(rec.Hashtags, ";"), content)
		posts = append(posts, &models.RawPost{
			Platform:         "instagram",
			ExternalPostID:   externalID,
			AuthorHandle:     NormalizeHandle(rec.handle(), "instagram"),
			ContentText:      content,
			Timestamp:        UnixTimestamp(rec.TakenAt),
			MediaURLs:        rec.media(),
			MentionedHandles: NormalizeHandles(rec.MentionedUsers, "instagram"),
			Hashtags:         hashtags,
			LikeCount:        rec.LikeCount,
			CommentCount:     rec.CommentCount,
			LocationText:     strings.TrimSpace(rec.LocationText),
		})
	}
	return posts, skipped, nil
}

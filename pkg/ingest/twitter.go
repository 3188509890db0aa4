package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/civiclens/civiclens/pkg/models"
)

// ParseTwitterCSV converts one scraper CSV file into normalized posts.
// Unparsable rows are skipped and counted, never fatal.
func ParseTwitterCSV(data []byte) ([]*models.RawPost, int, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	get := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var posts []*models.RawPost
	skipped := 0
	for {
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			skipped++
			continue
		}

		content := CleanContent(get(row, "tweet content"))
		externalID := CleanExternalID(get(row, "id"))
		if content == "" || externalID == "" {
			skipped++
			continue
		}

		posts = append(posts, &models.RawPost{
			Platform:          "twitter",
			ExternalPostID:    externalID,
			AuthorHandle:      NormalizeHandle(get(row, "username"), "twitter"),
			AuthorDisplayName: strings.TrimSpace(get(row, "display_name")),
			ContentText:       content,
			Timestamp:         ParseTimestamp(get(row, "date")),
			MediaURLs:         ParseMediaURLs(get(row, "media_urls")),
			MentionedHandles:  ParseMentionedUsers(get(row, "mentionedusers"), "twitter"),
			Hashtags:          ParseHashtags(get(row, "hashtags"), content),
			LikeCount:         ParseCount(get(row, "likecount")),
			ReplyCount:        ParseCount(get(row, "replycount")),
			RetweetCount:      ParseCount(get(row, "retweetcount")),
		})
	}
	return posts, skipped, nil
}

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civiclens/civiclens/pkg/models"
)

func TestGroupExternalIDs(t *testing.T) {
	chunk := []*models.RawPost{
		{Platform: "twitter", ExternalPostID: "t1"},
		{Platform: "instagram", ExternalPostID: "i1"},
		{Platform: "twitter", ExternalPostID: "t2"},
	}

	groups := groupExternalIDs(chunk)

	assert.Len(t, groups, 2)
	assert.Equal(t, []string{"t1", "t2"}, groups["twitter"])
	assert.Equal(t, []string{"i1"}, groups["instagram"])
	assert.Nil(t, groupExternalIDs(nil))
}

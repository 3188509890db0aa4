package dedup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/models"
	"github.com/civiclens/civiclens/pkg/storage"
)

// merger folds one duplicate event into a master. The steps run in a fixed
// order so a mid-merge crash leaves only redundant links, never a master
// missing data: tags, fields, post links, actor links, delete.
type merger struct {
	gateway *storage.Gateway
	dryRun  bool
}

func newMerger(gateway *storage.Gateway, dryRun bool) *merger {
	return &merger{gateway: gateway, dryRun: dryRun}
}

// Merge folds dup into master and deletes dup. In dry-run mode it logs the
// plan and writes nothing.
func (m *merger) Merge(ctx context.Context, master, dup *ent.Event) error {
	mergedTags := unionTags(master.CategoryTags, dup.CategoryTags)
	fillDescription := ""
	if strings.TrimSpace(master.EventDescription) == "" && dup.EventDescription != "" {
		fillDescription = dup.EventDescription
	}
	fillCity := ""
	if strings.TrimSpace(master.City) == "" && dup.City != "" {
		fillCity = dup.City
	}

	if m.dryRun {
		slog.Info("DRY RUN: would merge event",
			"master", master.ID, "duplicate", dup.ID,
			"master_name", master.EventName, "duplicate_name", dup.EventName,
			"merged_tags", len(mergedTags),
			"fills_description", fillDescription != "",
			"fills_city", fillCity != "")
		return nil
	}

	if err := m.gateway.UpdateEventMergedFields(ctx, master.ID, mergedTags, fillDescription, fillCity); err != nil {
		return fmt.Errorf("update master fields: %w", err)
	}

	if err := m.migratePostLinks(ctx, master.ID, dup.ID); err != nil {
		return m.failCleanly(ctx, dup.ID, fmt.Errorf("migrate post links: %w", err))
	}
	if err := m.migrateActorLinks(ctx, master.ID, dup.ID); err != nil {
		return m.failCleanly(ctx, dup.ID, fmt.Errorf("migrate actor links: %w", err))
	}

	if err := m.deleteDuplicate(ctx, dup.ID); err != nil {
		return err
	}
	slog.Info("Merged duplicate event",
		"master", master.ID, "duplicate", dup.ID, "name", master.EventName)
	return nil
}

// migratePostLinks copies the duplicate's post links onto the master and
// removes them from the duplicate.
func (m *merger) migratePostLinks(ctx context.Context, masterID, dupID string) error {
	masterLinks, err := m.gateway.EventPostLinks(ctx, masterID)
	if err != nil {
		return err
	}
	existing := make(map[string]struct{}, len(masterLinks))
	for _, l := range masterLinks {
		existing[l.PostID] = struct{}{}
	}

	dupLinks, err := m.gateway.EventPostLinks(ctx, dupID)
	if err != nil {
		return err
	}
	var missing []string
	for _, l := range dupLinks {
		if _, ok := existing[l.PostID]; !ok {
			missing = append(missing, l.PostID)
		}
	}
	if err := m.gateway.LinkEventPosts(ctx, masterID, missing); err != nil {
		return err
	}
	return m.gateway.DeleteEventPostLinks(ctx, dupID)
}

// migrateActorLinks copies the duplicate's actor links onto the master,
// skipping collisions on either the (handle, platform) key or the
// unknown-actor key, then removes them from the duplicate.
func (m *merger) migrateActorLinks(ctx context.Context, masterID, dupID string) error {
	masterLinks, err := m.gateway.EventActorLinks(ctx, masterID)
	if err != nil {
		return err
	}
	handleTaken := make(map[string]struct{}, len(masterLinks))
	unknownTaken := make(map[string]struct{})
	for _, l := range masterLinks {
		handleTaken[l.ActorHandle+"|"+l.Platform] = struct{}{}
		if l.UnknownActorID != nil {
			unknownTaken[*l.UnknownActorID] = struct{}{}
		}
	}

	dupLinks, err := m.gateway.EventActorLinks(ctx, dupID)
	if err != nil {
		return err
	}
	var moved []models.ActorLinkRow
	for _, l := range dupLinks {
		if _, ok := handleTaken[l.ActorHandle+"|"+l.Platform]; ok {
			continue
		}
		if l.UnknownActorID != nil {
			if _, ok := unknownTaken[*l.UnknownActorID]; ok {
				continue
			}
		}
		row := models.ActorLinkRow{
			EventID:     masterID,
			ActorHandle: l.ActorHandle,
			Platform:    l.Platform,
			ActorType:   l.ActorType,
		}
		if l.ActorID != nil {
			row.ActorID = *l.ActorID
		}
		if l.UnknownActorID != nil {
			row.UnknownActorID = *l.UnknownActorID
		}
		moved = append(moved, row)
	}
	if err := m.gateway.LinkEventActors(ctx, moved); err != nil {
		return err
	}
	return m.gateway.DeleteEventActorLinks(ctx, dupID)
}

// failCleanly strips the duplicate's remaining links before surfacing the
// original error, so a later retry can still delete the row without
// foreign-key violations.
func (m *merger) failCleanly(ctx context.Context, dupID string, cause error) error {
	m.forceCleanLinks(ctx, dupID)
	return cause
}

func (m *merger) forceCleanLinks(ctx context.Context, dupID string) {
	if err := m.gateway.DeleteEventPostLinks(ctx, dupID); err != nil {
		slog.Warn("Post-link cleanup after failed merge also failed",
			"duplicate", dupID, "error", err)
	}
	if err := m.gateway.DeleteEventActorLinks(ctx, dupID); err != nil {
		slog.Warn("Actor-link cleanup after failed merge also failed",
			"duplicate", dupID, "error", err)
	}
}

// deleteDuplicate removes the duplicate event, retrying once after a forced
// link cleanup if the first delete fails.
func (m *merger) deleteDuplicate(ctx context.Context, dupID string) error {
	err := m.gateway.DeleteEvents(ctx, []string{dupID})
	if err == nil {
		return nil
	}
	slog.Warn("Duplicate delete failed, cleaning links and retrying",
		"duplicate", dupID, "error", err)
	m.forceCleanLinks(ctx, dupID)
	if retryErr := m.gateway.DeleteEvents(ctx, []string{dupID}); retryErr != nil {
		return fmt.Errorf("delete duplicate %s: %w", dupID, retryErr)
	}
	return nil
}

// unionTags merges two tag lists, preserving the master's order and
// appending new tags from the duplicate. Comparison is case-insensitive.
func unionTags(master, dup []string) []string {
	seen := make(map[string]struct{}, len(master))
	out := make([]string, 0, len(master)+len(dup))
	for _, t := range master {
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	for _, t := range dup {
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

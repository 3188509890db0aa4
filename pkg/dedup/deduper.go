package dedup

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/civiclens/civiclens/ent"
	"github.com/civiclens/civiclens/pkg/llm"
	"github.com/civiclens/civiclens/pkg/models"
	"github.com/civiclens/civiclens/pkg/storage"
)

// ChatClient is the slice of the LLM client the deduper needs.
type ChatClient interface {
	Chat(ctx context.Context, messages []openai.ChatCompletionMessage, opts llm.ChatOptions) (*openai.ChatCompletionMessage, error)
}

// Stats summarizes one dedup run.
type Stats struct {
	GroupsExamined int
	GroupsSkipped  int
	MergesPlanned  int
	MergesExecuted int
	MergesFailed   int
	EventsDeleted  int
}

// Deduper loads duplicate groups, asks the model how to partition them, and
// executes accepted merges. In dry-run mode it logs planned merges without
// writing.
type Deduper struct {
	gateway *storage.Gateway
	client  ChatClient

	dryRun       bool
	minGroupSize int
}

// New builds a deduper. minGroupSize below 2 is treated as 2.
func New(gateway *storage.Gateway, client ChatClient, dryRun bool, minGroupSize int) *Deduper {
	if minGroupSize < 2 {
		minGroupSize = 2
	}
	return &Deduper{
		gateway:      gateway,
		client:       client,
		dryRun:       dryRun,
		minGroupSize: minGroupSize,
	}
}

// Run refreshes the similarity views and processes every group. Per-group
// failures are logged and skipped; jobLimit > 0 bounds the group count.
func (d *Deduper) Run(ctx context.Context, jobLimit int) (*Stats, error) {
	if err := d.gateway.RefreshDuplicateViews(ctx); err != nil {
		return nil, fmt.Errorf("refresh duplicate views: %w", err)
	}

	groups, err := d.gateway.DuplicateGroups(ctx, d.minGroupSize)
	if err != nil {
		return nil, err
	}
	if jobLimit > 0 && len(groups) > jobLimit {
		groups = groups[:jobLimit]
	}
	slog.Info("Loaded duplicate groups", "groups", len(groups), "dry_run", d.dryRun)

	stats := &Stats{}
	for _, group := range groups {
		stats.GroupsExamined++
		if err := d.processGroup(ctx, group, stats); err != nil {
			slog.Error("Duplicate group failed",
				"group_id", group.GroupID, "error", err)
			stats.GroupsSkipped++
		}
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
	}
	return stats, nil
}

func (d *Deduper) processGroup(ctx context.Context, group models.DuplicateGroup, stats *Stats) error {
	pairs, err := d.gateway.DuplicatePairs(ctx, group.EventIDs)
	if err != nil {
		return err
	}
	group.Pairs = pairs

	events, err := d.gateway.EventsByIDs(ctx, group.EventIDs)
	if err != nil {
		return err
	}
	if len(events) < 2 {
		// The view is stale; members were already merged away.
		return nil
	}

	decision, err := d.adjudicate(ctx, group, events)
	if err != nil {
		return err
	}
	if !decision.Actionable() {
		slog.Info("Skipping low-confidence group",
			"group_id", group.GroupID, "confidence", decision.Confidence)
		return nil
	}

	byID := make(map[string]*ent.Event, len(events))
	for _, ev := range events {
		byID[ev.ID] = ev
	}

	merger := newMerger(d.gateway, d.dryRun)
	for _, mg := range decision.MergeGroups {
		master, ok := byID[mg.MasterEventID]
		if !ok {
			slog.Warn("Merge decision names unknown master, skipping",
				"group_id", group.GroupID, "master", mg.MasterEventID)
			continue
		}
		for _, dupID := range mg.DuplicateEventIDs {
			dup, ok := byID[dupID]
			if !ok || dupID == master.ID {
				continue
			}
			stats.MergesPlanned++
			if err := merger.Merge(ctx, master, dup); err != nil {
				slog.Error("Merge failed, skipping pair",
					"master", master.ID, "duplicate", dupID, "error", err)
				stats.MergesFailed++
				continue
			}
			stats.MergesExecuted++
			if !d.dryRun {
				stats.EventsDeleted++
			}
		}
	}
	return nil
}

// adjudicate asks the model to partition one group into merges and survivors.
func (d *Deduper) adjudicate(ctx context.Context, group models.DuplicateGroup, events []*ent.Event) (*models.MergeDecision, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: adjudicationSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: buildGroupMessage(group, events)},
	}
	reply, err := d.client.Chat(ctx, messages, llm.ChatOptions{ForceJSON: true})
	if err != nil {
		return nil, fmt.Errorf("adjudicate group %s: %w", group.GroupID, err)
	}

	var decision models.MergeDecision
	if err := llm.DecodeJSON(reply.Content, &decision); err != nil {
		return nil, fmt.Errorf("decode merge decision: %w", err)
	}
	return &decision, nil
}

package storage

import (
	"context"

	"github.com/civiclens/civiclens/ent"
	entslug "github.com/civiclens/civiclens/ent/dynamicslug"
)

// LoadDynamicSlugs returns every registered dynamic slug grouped by parent
// tag, identifiers only. Callers cache this and reload on a short TTL.
func (g *Gateway) LoadDynamicSlugs(ctx context.Context) (map[string][]string, error) {
	var rows []*ent.DynamicSlug
	err := g.Do(ctx, "slugs.load", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = g.db.DynamicSlug.Query().
			Order(ent.Asc(entslug.FieldParentTag), ent.Asc(entslug.FieldSlugIdentifier)).
			All(ctx)
		return queryErr
	})
	if err != nil {
		return nil, err
	}
	byParent := make(map[string][]string)
	for _, row := range rows {
		byParent[row.ParentTag] = append(byParent[row.ParentTag], row.SlugIdentifier)
	}
	return byParent, nil
}

// RegisterDynamicSlug records a new ParentTag:identifier slug. Racing writers
// are fine: the conflict on full_slug is ignored.
func (g *Gateway) RegisterDynamicSlug(ctx context.Context, parentTag, identifier, fullSlug string) error {
	return g.Do(ctx, "slugs.register", func(ctx context.Context) error {
		return g.db.DynamicSlug.Create().
			SetParentTag(parentTag).
			SetSlugIdentifier(identifier).
			SetFullSlug(fullSlug).
			OnConflictColumns(entslug.FieldFullSlug).
			Ignore().
			Exec(ctx)
	})
}

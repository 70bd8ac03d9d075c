package cli

import (
	"context"

	"github.com/dmitrijs2005/infrakeeper/internal/models"
)

// Summary prints the dashboard header totals.
func (a *App) Summary(ctx context.Context) error {
	s, err := a.api.Summary(ctx)
	if err != nil {
		return err
	}
	renderSummary(a.out, s)
	return nil
}

// List prints one kind filtered by query.
func (a *App) List(ctx context.Context, kind models.Kind, query string) error {
	rows, err := a.api.ListEntities(ctx, kind, query)
	if err != nil {
		return err
	}
	renderEntities(a.out, rows, query)
	return nil
}

// Search lists matches across every kind.
func (a *App) Search(ctx context.Context, query string) error {
	return a.List(ctx, "", query)
}

package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/cardgen/pkg/domain/model"
	"github.com/m-mizutani/cardgen/pkg/usecase"
)

func entries(names ...string) []*model.RepoEntry {
	var out []*model.RepoEntry
	for _, name := range names {
		out = append(out, &model.RepoEntry{Name: name, Path: "_posts/" + name})
	}
	return out
}

func TestScanMissingCards(t *testing.T) {
	t.Run("posts without cards are missing, in listing order", func(t *testing.T) {
		posts := entries("a.md", "b.md", "c.md")
		cards := entries("b.md.png")

		missing := usecase.ScanMissingCards(posts, cards)
		gt.A(t, missing).Length(2)
		gt.V(t, missing[0].Name).Equal("a.md")
		gt.V(t, missing[1].Name).Equal("c.md")
	})

	t.Run("result is stable for fixed listings", func(t *testing.T) {
		posts := entries("a.md", "b.md")
		cards := entries("a.md.png")

		first := usecase.ScanMissingCards(posts, cards)
		second := usecase.ScanMissingCards(posts, cards)
		gt.V(t, first).Equal(second)
	})

	t.Run("removing a card adds its post back", func(t *testing.T) {
		posts := entries("a.md", "b.md")

		withBoth := usecase.ScanMissingCards(posts, entries("a.md.png", "b.md.png"))
		gt.A(t, withBoth).Length(0)

		withOne := usecase.ScanMissingCards(posts, entries("b.md.png"))
		gt.A(t, withOne).Length(1)
		gt.V(t, withOne[0].Name).Equal("a.md")
	})

	t.Run("a post with a present card never appears", func(t *testing.T) {
		posts := entries("a.md", "b.md", "c.md")
		cards := entries("a.md.png", "b.md.png", "c.md.png")

		gt.A(t, usecase.ScanMissingCards(posts, cards)).Length(0)
	})

	t.Run("empty listings", func(t *testing.T) {
		gt.A(t, usecase.ScanMissingCards(nil, nil)).Length(0)
		gt.A(t, usecase.ScanMissingCards(nil, entries("a.md.png"))).Length(0)
		gt.A(t, usecase.ScanMissingCards(entries("a.md"), nil)).Length(1)
	})

	t.Run("unrelated cards are ignored", func(t *testing.T) {
		posts := entries("a.md")
		cards := entries("other.md.png", "a.md") // a.md without suffix is not a card match

		missing := usecase.ScanMissingCards(posts, cards)
		gt.A(t, missing).Length(1)
	})
}

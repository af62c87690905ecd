package usecase

import (
	"github.com/m-mizutani/cardgen/pkg/domain/model"
)

// ScanMissingCards returns the posts that have no corresponding card, in the
// order of the posts listing. Correspondence is filename equality: the card
// for `a.md` is `a.md.png`. The function is pure; both listings come from the
// caller.
func ScanMissingCards(posts, cards []*model.RepoEntry) []*model.RepoEntry {
	existing := make(map[string]struct{}, len(cards))
	for _, card := range cards {
		existing[card.Name] = struct{}{}
	}

	var missing []*model.RepoEntry
	for _, post := range posts {
		if _, ok := existing[model.CardNameFor(post.Name)]; !ok {
			missing = append(missing, post)
		}
	}

	return missing
}

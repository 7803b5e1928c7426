package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgerror"
)

const noStepsAvailable = "No steps available for this issue type."

// SearchKnowledge returns the items whose title or description contains
// query, ignoring case. An empty query returns everything.
func (u *Usecase) SearchKnowledge(ctx context.Context, query string) []entity.KnowledgeItem {
	items := u.store.Knowledge(ctx)
	if query == "" {
		return items
	}

	q := strings.ToLower(query)
	out := make([]entity.KnowledgeItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) || strings.Contains(strings.ToLower(item.Description), q) {
			out = append(out, item)
		}
	}
	return out
}

// Troubleshoot returns the guide for issue. Unknown issues get a single
// placeholder step rather than an error.
func (u *Usecase) Troubleshoot(ctx context.Context, issue string) (TroubleshootingResult, error) {
	result := TroubleshootingResult{
		Issue:   issue,
		Heading: "Troubleshooting Steps for " + strings.ToUpper(strings.Replace(issue, "-", " ", 1)),
	}

	guide, err := u.store.Guide(ctx, issue)
	if errors.Is(err, pkgerror.ErrNotFound) {
		result.Steps = []string{noStepsAvailable}
		return result, nil
	}
	if err != nil {
		return TroubleshootingResult{}, mapStoreErr(err, "guide")
	}

	result.Steps = guide.Steps
	return result, nil
}

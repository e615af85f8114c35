// Package engagement derives rankings and counts from a snapshot of the prompt
// catalog. Nothing here touches storage; every function returns a fresh slice and
// leaves its input untouched.
package engagement

import (
	"sort"

	"github.com/farellandr/promptbox/internal/models"
)

// DefaultTopN is the size of the sidebar rankings.
const DefaultTopN = 5

// Score is likes minus dislikes and may be negative.
func Score(p models.Prompt) int {
	return p.Likes - p.Dislikes
}

// TopCreators counts prompts per author and returns the n most prolific. Equal
// counts are ordered by author name.
func TopCreators(prompts []models.Prompt, n int) []models.CreatorStats {
	counts := make(map[string]int)
	for _, p := range prompts {
		counts[p.Author]++
	}

	creators := make([]models.CreatorStats, 0, len(counts))
	for author, count := range counts {
		creators = append(creators, models.CreatorStats{Author: author, PromptCount: count})
	}
	sort.Slice(creators, func(i, j int) bool {
		if creators[i].PromptCount != creators[j].PromptCount {
			return creators[i].PromptCount > creators[j].PromptCount
		}
		return creators[i].Author < creators[j].Author
	})
	return limit(creators, n)
}

// MostLiked ranks by raw likes, ignoring dislikes. n <= 0 returns every prompt.
func MostLiked(prompts []models.Prompt, n int) []models.Prompt {
	ranked := clone(prompts)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Likes != ranked[j].Likes {
			return ranked[i].Likes > ranked[j].Likes
		}
		return ranked[i].ID < ranked[j].ID
	})
	return limit(ranked, n)
}

// TopRated ranks by Score. Ties fall back to raw likes, then id. n <= 0 returns
// every prompt.
func TopRated(prompts []models.Prompt, n int) []models.Prompt {
	ranked := clone(prompts)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := Score(ranked[i]), Score(ranked[j])
		if si != sj {
			return si > sj
		}
		if ranked[i].Likes != ranked[j].Likes {
			return ranked[i].Likes > ranked[j].Likes
		}
		return ranked[i].ID < ranked[j].ID
	})
	return limit(ranked, n)
}

// CountByCategory pairs each category with the number of prompts filed under its
// name, keeping the order of categories. Prompts naming no known category are
// ignored.
func CountByCategory(prompts []models.Prompt, categories []models.Category) []models.CategoryWithCount {
	counts := make(map[string]int64, len(categories))
	for _, p := range prompts {
		counts[p.Category]++
	}

	result := make([]models.CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		result = append(result, models.CategoryWithCount{Category: c, Count: counts[c.Name]})
	}
	return result
}

func clone(prompts []models.Prompt) []models.Prompt {
	out := make([]models.Prompt, len(prompts))
	copy(out, prompts)
	return out
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

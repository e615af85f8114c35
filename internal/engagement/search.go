package engagement

import (
	"fmt"
	"sort"
	"strings"

	"github.com/farellandr/promptbox/internal/models"
)

const (
	FieldAny      = "any"
	FieldTitle    = "title"
	FieldAuthor   = "author"
	FieldCategory = "category"
	FieldContent  = "content"
	FieldTags     = "tags"
)

const (
	OrderRecent   = "recent"
	OrderTitle    = "title"
	OrderCategory = "category"
	OrderPopular  = "popular"
	OrderLikes    = "likes"
)

// Query is a case-insensitive substring search. An empty Field searches title,
// content and author.
type Query struct {
	Text  string
	Field string
}

type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown search field %q", e.Field)
}

type UnknownOrderError struct {
	Order string
}

func (e *UnknownOrderError) Error() string {
	return fmt.Sprintf("unknown sort order %q", e.Order)
}

// Filter returns the prompts matching q. A blank query matches everything.
func Filter(prompts []models.Prompt, q Query) ([]models.Prompt, error) {
	match, err := matcher(q.Field)
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text == "" {
		return clone(prompts), nil
	}

	result := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if match(p, text) {
			result = append(result, p)
		}
	}
	return result, nil
}

func contains(value, text string) bool {
	return strings.Contains(strings.ToLower(value), text)
}

func matcher(field string) (func(models.Prompt, string) bool, error) {
	switch strings.ToLower(field) {
	case "", FieldAny:
		return func(p models.Prompt, text string) bool {
			return contains(p.Title, text) || contains(p.Content, text) || contains(p.Author, text)
		}, nil
	case FieldTitle:
		return func(p models.Prompt, text string) bool { return contains(p.Title, text) }, nil
	case FieldAuthor:
		return func(p models.Prompt, text string) bool { return contains(p.Author, text) }, nil
	case FieldCategory:
		return func(p models.Prompt, text string) bool { return contains(p.Category, text) }, nil
	case FieldContent:
		return func(p models.Prompt, text string) bool { return contains(p.Content, text) }, nil
	case FieldTags:
		return func(p models.Prompt, text string) bool {
			for _, tag := range p.TagList() {
				if contains(tag, text) {
					return true
				}
			}
			return false
		}, nil
	default:
		return nil, &UnknownFieldError{Field: field}
	}
}

// Sort orders prompts for the browsing views. An empty order means OrderRecent.
func Sort(prompts []models.Prompt, order string) ([]models.Prompt, error) {
	switch strings.ToLower(order) {
	case "", OrderRecent:
		sorted := clone(prompts)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
		return sorted, nil
	case OrderTitle:
		sorted := clone(prompts)
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		})
		return sorted, nil
	case OrderCategory:
		sorted := clone(prompts)
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Category) < strings.ToLower(sorted[j].Category)
		})
		return sorted, nil
	case OrderPopular:
		return TopRated(prompts, 0), nil
	case OrderLikes:
		return MostLiked(prompts, 0), nil
	default:
		return nil, &UnknownOrderError{Order: order}
	}
}

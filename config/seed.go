package config

import (
	"time"

	"github.com/farellandr/promptbox/internal/models"
	"github.com/farellandr/promptbox/internal/repository"
	"go.uber.org/zap"
)

var defaultCategories = []models.Category{
	{Name: "Code", Icon: "Code", Color: "blue"},
	{Name: "Productivity", Icon: "Briefcase", Color: "green"},
	{Name: "Writing", Icon: "FileText", Color: "purple"},
	{Name: "Analysis", Icon: "BarChart", Color: "orange"},
	{Name: "Creativity", Icon: "Lightbulb", Color: "pink"},
}

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func samplePrompts() []models.Prompt {
	return []models.Prompt{
		{
			Title:     "Refactor code",
			Content:   "Analyze the code below and suggest improvements for readability, performance, and best practices:\n\n[PASTE YOUR CODE HERE]",
			Category:  "Code",
			Author:    "John Doe",
			CreatedAt: seedTime("2025-10-01T10:00:00Z"),
			Likes:     45,
			Dislikes:  3,
		},
		{
			Title:     "Create unit tests",
			Content:   "Create complete unit tests for the following function, including success cases, error cases, and edge cases:\n\n[PASTE YOUR FUNCTION HERE]",
			Category:  "Code",
			Author:    "Sarah Smith",
			CreatedAt: seedTime("2025-10-02T14:30:00Z"),
			Likes:     38,
			Dislikes:  2,
		},
		{
			Title:     "Explain technical concept",
			Content:   "Explain the concept of [CONCEPT] in a clear and didactic way, with practical examples and simple analogies.",
			Category:  "Code",
			Author:    "Mike Johnson",
			CreatedAt: seedTime("2025-10-03T09:15:00Z"),
			Likes:     52,
			Dislikes:  1,
		},
		{
			Title:     "Summarize meeting",
			Content:   "Analyze the meeting transcript below and create an executive summary with:\n- Main topics discussed\n- Decisions made\n- Action items and assignees\n- Next steps\n\n[PASTE TRANSCRIPT HERE]",
			Category:  "Productivity",
			Author:    "Emma Wilson",
			CreatedAt: seedTime("2025-10-04T11:20:00Z"),
			Likes:     67,
			Dislikes:  4,
		},
		{
			Title:     "Create project checklist",
			Content:   "Create a detailed checklist to manage a [PROJECT TYPE] project, including all phases from planning to delivery.",
			Category:  "Productivity",
			Author:    "David Brown",
			CreatedAt: seedTime("2025-10-05T16:45:00Z"),
			Likes:     41,
			Dislikes:  2,
		},
		{
			Title:     "Write professional email",
			Content:   "Write a professional email to [RECIPIENT] about [SUBJECT], maintaining a [FORMAL/CASUAL] and objective tone.",
			Category:  "Productivity",
			Author:    "Lisa Anderson",
			CreatedAt: seedTime("2025-10-06T08:00:00Z"),
			Likes:     89,
			Dislikes:  5,
		},
		{
			Title:     "Translate technical text",
			Content:   "Translate the technical text below from [SOURCE LANGUAGE] to [TARGET LANGUAGE], maintaining accuracy of technical terms:\n\n[PASTE TEXT HERE]",
			Category:  "Writing",
			Author:    "Carlos Martinez",
			CreatedAt: seedTime("2025-10-07T13:30:00Z"),
			Likes:     33,
			Dislikes:  1,
		},
		{
			Title:     "Improve writing",
			Content:   "Analyze the text below and suggest improvements in clarity, cohesion, and grammar without changing the original meaning:\n\n[PASTE YOUR TEXT HERE]",
			Category:  "Writing",
			Author:    "Anna Taylor",
			CreatedAt: seedTime("2025-10-08T10:10:00Z"),
			Likes:     76,
			Dislikes:  3,
		},
		{
			Title:     "Create social media content",
			Content:   "Create 5 posts for [SOCIAL MEDIA] about [TOPIC], with a [CASUAL/PROFESSIONAL] tone and including relevant hashtags.",
			Category:  "Writing",
			Author:    "Tom Harris",
			CreatedAt: seedTime("2025-10-09T15:25:00Z"),
			Likes:     94,
			Dislikes:  6,
		},
		{
			Title:     "Data analysis",
			Content:   "Analyze the data below and provide insights, identified patterns, and strategic recommendations:\n\n[PASTE DATA HERE]",
			Category:  "Analysis",
			Author:    "Rachel Green",
			CreatedAt: seedTime("2025-10-10T12:00:00Z"),
			Likes:     58,
			Dislikes:  2,
		},
		{
			Title:     "Compare alternatives",
			Content:   "Compare the following alternatives [OPTION A] vs [OPTION B] considering criteria such as cost, benefits, risks, and recommend the best choice.",
			Category:  "Analysis",
			Author:    "James Lee",
			CreatedAt: seedTime("2025-10-11T09:40:00Z"),
			Likes:     44,
			Dislikes:  1,
		},
		{
			Title:     "Brainstorm ideas",
			Content:   "Generate 10 creative and innovative ideas for [PROBLEM/OBJECTIVE], exploring different angles and approaches.",
			Category:  "Creativity",
			Author:    "Sophie Chen",
			CreatedAt: seedTime("2025-10-12T14:15:00Z"),
			Likes:     71,
			Dislikes:  3,
		},
		{
			Title:     "Create storytelling",
			Content:   "Create an engaging narrative about [TOPIC] that emotionally connects with the audience and conveys [MESSAGE].",
			Category:  "Creativity",
			Author:    "Oliver White",
			CreatedAt: seedTime("2025-10-13T11:50:00Z"),
			Likes:     103,
			Dislikes:  7,
		},
	}
}

// Seed fills empty tables with the default categories and sample prompts. Tables
// that already hold rows are left alone.
func Seed(store *repository.Store, log *zap.Logger) error {
	categoryCount, err := store.Categories.Count()
	if err != nil {
		return err
	}
	if categoryCount == 0 {
		for _, category := range defaultCategories {
			if _, err := store.Categories.Create(category.Name, category.Icon, category.Color); err != nil {
				return err
			}
		}
		log.Info("Seeded default categories", zap.Int("count", len(defaultCategories)))
	}

	promptCount, err := store.Prompts.Count()
	if err != nil {
		return err
	}
	if promptCount == 0 {
		prompts := samplePrompts()
		if err := store.Prompts.Insert(prompts); err != nil {
			return err
		}
		log.Info("Seeded sample prompts", zap.Int("count", len(prompts)))
	}
	return nil
}

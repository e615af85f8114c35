package models

import (
	"strings"
	"time"
)

type Prompt struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"index;not null" json:"category"`
	Author    string    `gorm:"not null" json:"author"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	Dislikes  int       `gorm:"not null;default:0" json:"dislikes"`
	Tags      *string   `json:"tags,omitempty"`
}

// TagList splits the comma-separated Tags column.
func (p Prompt) TagList() []string {
	if p.Tags == nil {
		return nil
	}
	return SplitTags(*p.Tags)
}

// SplitTags trims every comma-separated label and drops empty ones.
func SplitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// NormalizeTags returns the canonical stored form of raw, or nil when no label survives.
func NormalizeTags(raw *string) *string {
	if raw == nil {
		return nil
	}
	tags := SplitTags(*raw)
	if len(tags) == 0 {
		return nil
	}
	joined := strings.Join(tags, ",")
	return &joined
}

// CreatorStats is one row of the top creators ranking.
type CreatorStats struct {
	Author      string `json:"author"`
	PromptCount int    `json:"promptCount"`
}

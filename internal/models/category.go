package models

// Category is a named, styled bucket for prompts. Prompts point at it by Name.
type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Icon  string `gorm:"not null" json:"icon"`
	Color string `gorm:"not null" json:"color"`
}

// CategoryWithCount is a Category plus the number of prompts referencing its name.
type CategoryWithCount struct {
	Category
	Count int64 `json:"count"`
}

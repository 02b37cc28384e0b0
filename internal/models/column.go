package models

// Column represents a published news or health column article.
type Column struct {
	BaseModel
	Image       string `gorm:"size:512;not null" json:"image"` // external URL
	ColumnTitle string `gorm:"size:255;not null" json:"columnTitle"`
	Author      string `gorm:"size:100" json:"author,omitempty"`
	Content     string `gorm:"type:text;not null" json:"content"`
}

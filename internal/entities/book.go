package entities

import "time"

// Book is the persisted book record.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:512" json:"title"`
	Author    string    `gorm:"size:256" json:"author"`
	ISBN      string    `gorm:"size:20" json:"isbn"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

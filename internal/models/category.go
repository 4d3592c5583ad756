package models

type Category struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type SubCategory struct {
	BaseModel
	Name       string  `gorm:"not null" json:"name"`
	CategoryID *string `gorm:"type:uuid;index" json:"categoryId,omitempty"`
}

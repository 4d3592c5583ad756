package models

type Review struct {
	BaseModel
	Rating  float64 `gorm:"default:0" json:"rating"`
	Comment string  `json:"comment,omitempty"`
	UserID  string  `gorm:"type:uuid;not null;index" json:"userId"`
}

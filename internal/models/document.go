package models

// Document - загруженный документ сервис-провайдера.
// Содержимое хранится в БД и наружу в JSON не отдается.
type Document struct {
	BaseModel
	Name   string `gorm:"not null" json:"name"`
	Data   []byte `gorm:"type:bytea;not null" json:"-"`
	UserID string `gorm:"type:uuid;not null;index" json:"userId"`
}

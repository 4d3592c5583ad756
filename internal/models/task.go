package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Task - задача, опубликованная пользователем.
type Task struct {
	BaseModel
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description,omitempty"`
	OwnerID     string         `gorm:"type:uuid;not null;index" json:"ownerId"`
	Budget      float64        `gorm:"default:0" json:"budget"`
	Status      TaskStatus     `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	Skills      datatypes.JSON `json:"skills,omitempty"`

	// Relations
	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

// GetSkills десериализует список навыков из JSON-колонки.
func (t *Task) GetSkills() []string {
	if len(t.Skills) == 0 {
		return nil
	}
	var skills []string
	if err := json.Unmarshal(t.Skills, &skills); err != nil {
		return nil
	}
	return skills
}

// SetSkills сериализует список навыков в JSON-колонку.
func (t *Task) SetSkills(skills []string) error {
	data, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	t.Skills = datatypes.JSON(data)
	return nil
}

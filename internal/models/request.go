package models

// Request - заявка сервис-провайдера на выполнение задачи.
type Request struct {
	BaseModel
	TaskID      string        `gorm:"type:uuid;not null;index" json:"taskId"`
	RequesterID string        `gorm:"type:uuid;not null;index" json:"requesterId"`
	Message     *string       `json:"message,omitempty"`
	Status      RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	// Relations
	Task      *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
}

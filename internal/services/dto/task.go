package dto

// CreateTaskRequest - публикация задачи владельцем
type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	OwnerID     string   `json:"ownerId" binding:"required"`
	Budget      float64  `json:"budget"`
	Skills      []string `json:"skills"`
}

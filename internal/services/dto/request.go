package dto

// CreateRequestRequest - заявка сервис-провайдера на задачу
type CreateRequestRequest struct {
	TaskID      string  `json:"taskId" binding:"required"`
	RequesterID string  `json:"requesterId" binding:"required"`
	Message     *string `json:"message"`
}

// DecideRequestRequest - accept/reject по id в теле запроса
type DecideRequestRequest struct {
	RequestID string `json:"requestId" binding:"required"`
}

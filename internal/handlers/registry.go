package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	UserHandler    *UserHandler
	RequestHandler *RequestHandler
	TaskHandler    *TaskHandler
}

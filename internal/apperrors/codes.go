package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"
	CodeMissingUpload    ErrorCode = "MISSING_UPLOAD"

	// Ресурсы
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeTaskNotFound     ErrorCode = "TASK_NOT_FOUND"
	CodeRequestNotFound  ErrorCode = "REQUEST_NOT_FOUND"
	CodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists     ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeRequestAlreadyDecided  ErrorCode = "REQUEST_ALREADY_DECIDED"
	CodeInvalidRequestStatus   ErrorCode = "INVALID_REQUEST_STATUS"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeMailError     ErrorCode = "MAIL_ERROR"
)

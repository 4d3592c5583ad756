package dto

// RegisterUserRequest - регистрация обычного пользователя
type RegisterUserRequest struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	PhoneNo   string `json:"phoneNo"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Country   string `json:"country"`
}

// RegisterServiceProviderRequest - регистрация сервис-провайдера.
// Приходит multipart-формой вместе с файлами image и document.
type RegisterServiceProviderRequest struct {
	Firstname     string  `form:"firstname" json:"firstname" binding:"required"`
	Lastname      string  `form:"lastname" json:"lastname" binding:"required"`
	Email         string  `form:"email" json:"email" binding:"required,email"`
	Password      string  `form:"password" json:"password" binding:"required,min=6"`
	PhoneNo       string  `form:"phoneNo" json:"phoneNo" binding:"required"`
	Address       string  `form:"address" json:"address"`
	City          string  `form:"city" json:"city"`
	Province      string  `form:"province" json:"province"`
	Country       string  `form:"country" json:"country"`
	Zipcode       string  `form:"zipcode" json:"zipcode"`
	Gender        string  `form:"gender" json:"gender"`
	WageType      string  `form:"wageType" json:"wageType" binding:"required" validate:"is-wage-type"`
	Wage          float64 `form:"wage" json:"wage" binding:"required"`
	CategoryID    *string `form:"categoryId" json:"categoryId"`
	SubCategoryID *string `form:"subCategoryId" json:"subCategoryId"`
}

// FileUpload - содержимое загруженного файла
type FileUpload struct {
	Name string
	Data []byte
}

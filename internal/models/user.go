package models

type User struct {
	BaseModel
	Firstname    string   `gorm:"not null" json:"firstname"`
	Lastname     string   `gorm:"not null" json:"lastname"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	PhoneNo      string   `json:"phoneNo"`
	Address      string   `json:"address,omitempty"`
	City         string   `json:"city,omitempty"`
	Province     string   `json:"province,omitempty"`
	Country      string   `json:"country,omitempty"`
	Zipcode      string   `json:"zipcode,omitempty"`
	Gender       string   `json:"gender,omitempty"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	// Поля сервис-провайдера
	Wage          float64 `json:"wage,omitempty"`
	WageType      string  `json:"wageType,omitempty"`
	Image         []byte  `gorm:"type:bytea" json:"image,omitempty"`
	CategoryID    *string `gorm:"type:uuid" json:"categoryId,omitempty"`
	SubCategoryID *string `gorm:"type:uuid" json:"subCategoryId,omitempty"`
	ReviewID      *string `gorm:"type:uuid" json:"reviewId,omitempty"`

	// Relations
	Category    *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategory *SubCategory `gorm:"foreignKey:SubCategoryID" json:"subCategory,omitempty"`
	Review      *Review      `gorm:"foreignKey:ReviewID" json:"review,omitempty"`
	Documents   []Document   `gorm:"foreignKey:UserID" json:"documents,omitempty"`
}

// IsServiceProvider проверяет роль пользователя.
func (u *User) IsServiceProvider() bool {
	return u.Role == UserRoleServiceProvider
}

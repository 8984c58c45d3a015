package dto

// UpdateUserDTO 整体更新资料，未填的可选字段按清空处理
type UpdateUserDTO struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8,max=64"`
	Nickname  string  `json:"nick_name" validate:"required,min=1,max=20"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=50"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

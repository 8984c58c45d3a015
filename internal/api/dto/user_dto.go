package dto

type UserDTO struct {
	UserID    uint64  `json:"user_id"`
	Email     string  `json:"email"`
	Nickname  string  `json:"nick_name"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	BirthDate *string `json:"birth_date,omitempty"`
	Followers int64   `json:"followers"`
}

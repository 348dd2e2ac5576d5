package users

type UserDTO struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Role       string  `json:"role"`
	IsVerified bool    `json:"is_verified"`
}

type MeResponse struct {
	User            UserDTO `json:"user"`
	AutomationCount int64   `json:"automation_count"`
	OpenTickets     int64   `json:"open_tickets"`
}

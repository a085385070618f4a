package auth

type RegisterRequest struct {
	FullName    string `json:"full_name" binding:"required,min=2"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Institution string `json:"institution"`
	Phone       string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName    string `json:"full_name,omitempty"`
	Institution string `json:"institution,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type UserProfileResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	FullName    string `json:"full_name"`
	Institution string `json:"institution,omitempty"`
	Phone       string `json:"phone,omitempty"`
	CreatedAt   string `json:"created_at"`
}

package handler

import "github.com/restaurant-platform/restaurant-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// loginRequest mirrors the historical client contract: username and role are
// demanded alongside the credentials, though only email and password drive
// the lookup.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Message     string      `json:"message"`
	AccessToken string      `json:"access_token"`
	Username    string      `json:"username"`
	Role        domain.Role `json:"role"`
}

// --- Users ---

type userProfileResponse struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
}

type listUsersResponse struct {
	Users []userProfileResponse `json:"users"`
}

// --- Dishes ---

// Price is a pointer so that an explicit zero survives the required check:
// a free dish is valid, an absent price is not.
type createDishRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
}

type updateDishRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

// --- Tables ---

type createTableRequest struct {
	TableNumber     *int  `json:"table_number"     validate:"required,gt=0"`
	SeatingCapacity *int  `json:"seating_capacity" validate:"required,gt=0"`
	IsAvailable     *bool `json:"is_available"`
}

type updateTableRequest struct {
	TableNumber     *int  `json:"table_number"     validate:"omitempty,gt=0"`
	SeatingCapacity *int  `json:"seating_capacity" validate:"omitempty,gt=0"`
	IsAvailable     *bool `json:"is_available"`
}

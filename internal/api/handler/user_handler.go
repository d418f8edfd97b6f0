package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
	"github.com/restaurant-platform/restaurant-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func profileOf(u *domain.User) userProfileResponse {
	return userProfileResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// Get handles GET /users/:id.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userProfileResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	callerID, ok := c.Get("user_id").(uint)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	user, err := h.userService.GetProfile(c.Request().Context(), callerID, uint(targetID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "Unauthorized"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, profileOf(user))
}

// List handles GET /users. The route is gated to Admin by RequireRole.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	out := make([]userProfileResponse, 0, len(users))
	for i := range users {
		out = append(out, profileOf(&users[i]))
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: out})
}

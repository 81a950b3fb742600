package users

import (
	"net/http"

	"github.com/mytheresa/catalogue-browser/app/respond"
	"github.com/mytheresa/catalogue-browser/internal/logging"
	"github.com/mytheresa/catalogue-browser/models"
)

type UserResponse struct {
	ID   uint       `json:"id"`
	Name string     `json:"name"`
	Sex  models.Sex `json:"sex"`
}

type UserProvider interface {
	GetAllUsers() ([]models.User, error)
}

type UserHandler struct {
	repo UserProvider
}

func NewUserHandler(r UserProvider) *UserHandler {
	return &UserHandler{repo: r}
}

func (h *UserHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	l := logging.FromContext(r.Context()).With("handler", "users.get_all")

	users, err := h.repo.GetAllUsers()
	if err != nil {
		l.Error("get_users_failed", "status", 500, "error", err)
		respond.Error(w, r, http.StatusInternalServerError, "failed to fetch users")
		return
	}

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = UserResponse{
			ID:   u.ID,
			Name: u.Name,
			Sex:  u.Sex,
		}
	}

	respond.JSON(w, r, http.StatusOK, response)
}

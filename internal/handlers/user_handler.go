package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"biblioteca-api/internal/apperrors"
	"biblioteca-api/internal/constants"
	"biblioteca-api/internal/models"
	"biblioteca-api/internal/service"
	"biblioteca-api/internal/utils"
)

type UserHandler struct {
	Users       *service.UserService
	Loans       *service.LoanService
	AuditLogger utils.Logger
}

func NewUserHandler(users *service.UserService, loans *service.LoanService, logger utils.Logger) *UserHandler {
	return &UserHandler{Users: users, Loans: loans, AuditLogger: logger}
}

// GET /api/usuarios
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Users.ListAll())
}

// GET /api/usuarios/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	user, err := h.Users.FindByID(id)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// GET /api/usuarios/email/{email}
func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.FindByEmail(mux.Vars(r)["email"])
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// GET /api/usuarios/nombre/{nombre}
func (h *UserHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Users.SearchByName(mux.Vars(r)["nombre"]))
}

// GET /api/usuarios/estado/{estado}
func (h *UserHandler) GetUsersByState(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["estado"]
	if !models.IsValidUserState(state) {
		utils.WriteError(w, r, apperrors.InvalidData("invalid user state: "+state))
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.Users.ListByState(models.UserState(state)))
}

// POST /api/usuarios
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.WriteError(w, r, apperrors.InvalidData("invalid JSON payload"))
		return
	}
	user.ID = 0
	created, err := h.Users.Create(user)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.UserEntity, constants.Create, created)
	utils.WriteJSON(w, http.StatusCreated, created)
}

// PUT /api/usuarios/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.WriteError(w, r, apperrors.InvalidData("invalid JSON payload"))
		return
	}
	updated, err := h.Users.Update(id, user)
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.UserEntity, constants.Update, updated)
	utils.WriteJSON(w, http.StatusOK, updated)
}

// PATCH /api/usuarios/{id}/estado?estado={estado}
func (h *UserHandler) ChangeUserState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	state := r.URL.Query().Get("estado")
	if !models.IsValidUserState(state) {
		utils.WriteError(w, r, apperrors.InvalidData("invalid user state: "+state))
		return
	}
	user, err := h.Users.ChangeState(id, models.UserState(state))
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.UserEntity, constants.ChangeState, user)
	utils.WriteJSON(w, http.StatusOK, user)
}

// DELETE /api/usuarios/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteError(w, r, err)
		return
	}
	if h.Loans.HasActiveLoanForUser(id) {
		utils.WriteError(w, r, apperrors.ResourceUnavailable(models.UserEntity, "the user has an active loan"))
		return
	}
	if err := h.Users.Delete(id); err != nil {
		utils.WriteError(w, r, err)
		return
	}
	h.AuditLogger.Log(r.Context(), models.UserEntity, constants.Delete, id)
	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/grove-games/armory/internal/logger"
	"github.com/grove-games/armory/internal/user"
)

type SignUpRequest struct {
	LoginID         string `json:"login_id" validate:"required,min=4,max=20,lowercase,alphanum"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Name            string `json:"name" validate:"required,max=50"`
}

type SignUpResponse struct {
	UserID  string `json:"user_id"`
	LoginID string `json:"login_id"`
	Name    string `json:"name"`
}

// HandleSignUp registers a new account.
func HandleSignUp(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SignUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode sign-up request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid sign-up request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		created, err := svc.SignUp(r.Context(), req.LoginID, req.Password, req.ConfirmPassword, req.Name)
		if err != nil {
			respondServiceError(w, log, "Failed to sign up", err)
			return
		}

		respondJSON(w, http.StatusCreated, SignUpResponse{
			UserID:  created.ID,
			LoginID: created.LoginID,
			Name:    created.Name,
		})
	}
}

type SignInRequest struct {
	LoginID  string `json:"login_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

// HandleSignIn authenticates an account and returns an access token.
func HandleSignIn(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode sign-in request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid sign-in request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		token, err := svc.SignIn(r.Context(), req.LoginID, req.Password)
		if err != nil {
			respondServiceError(w, log, "Failed to sign in", err)
			return
		}

		respondJSON(w, http.StatusOK, SignInResponse{Token: token})
	}
}

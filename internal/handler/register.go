package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventbill/internal/service"
)

func CreateUserHandler(authSvc *service.AuthService, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.Login == "" || req.Password == "" {
			http.Error(w, "login and password required", http.StatusBadRequest)
			return
		}

		user, err := authSvc.Register(r.Context(), req.Login, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrLoginTaken) {
				http.Error(w, "login already exists", http.StatusConflict)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		tokenString, err := issueToken(user.ID, secret)
		if err != nil {
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Authorization", "Bearer "+tokenString)
		writeJSON(w, http.StatusCreated, user)
	}
}

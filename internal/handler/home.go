package handler

import (
	"errors"
	"net/http"

	"eventbill/internal/mw"
	"eventbill/internal/service"
)

// ProfileHandler returns the authenticated user. The route sits behind the
// auth gate, so the context always carries a user id by the time we run.
func ProfileHandler(authSvc *service.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(mw.UserCtxKey).(string)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := authSvc.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

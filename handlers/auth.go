package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/ariel-ams/photos-api-back/auth"
	"github.com/ariel-ams/photos-api-back/store"
	"github.com/ariel-ams/photos-api-back/utils"
)

type AuthHandler struct {
	manager *auth.Manager
}

func NewAuthHandler(m *auth.Manager) *AuthHandler {
	return &AuthHandler{manager: m}
}

// Home answers the root route.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Welcome to login, sign-up api")
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type registerResponse struct {
	Success bool   `json:"success"`
	User    string `json:"user,omitempty"`
}

type registerConflictResponse struct {
	Auth    bool   `json:"auth"`
	Message string `json:"message"`
}

func decodeRegisterRequest(r *http.Request) (registerRequest, error) {
	if isJSONRequest(r) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return registerRequest{}, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return registerRequest{}, err
	}
	return registerRequest{
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		Password2: r.FormValue("password2"),
	}, nil
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := decodeRegisterRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if !utils.SamePassword(req.Password, req.Password2) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "password does not match"})
		return
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		log.Println("invalid email: ", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid email address"})
		return
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		log.Println("invalid password: ", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	user, err := h.manager.Register(r.Context(), req.Email, req.Password, req.Password2)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordMismatch):
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "password does not match"})
		case errors.Is(err, store.ErrDuplicateEmail):
			writeJSON(w, http.StatusBadRequest, registerConflictResponse{Auth: false, Message: "email already exists"})
		default:
			log.Println("add user error: ", err, " user: ", req.Email)
			writeJSON(w, http.StatusBadRequest, registerResponse{Success: false})
		}
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{Success: true, User: user.ID.String()})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	IsAuth  bool   `json:"isAuth"`
	ID      string `json:"id,omitempty"`
	Email   string `json:"email,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

type alreadyLoggedInResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func decodeLoginRequest(r *http.Request) (loginRequest, error) {
	if isJSONRequest(r) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return loginRequest{}, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return loginRequest{}, err
	}
	return loginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}, nil
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// A valid session already on the request means the caller is logged
	// in, whoever the posted credentials belong to.
	if cookie, err := r.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		if _, err := h.manager.Authenticate(r.Context(), cookie.Value); err == nil {
			writeJSON(w, http.StatusBadRequest, alreadyLoggedInResponse{Error: true, Message: "You are already logged in"})
			return
		}
	}

	req, err := decodeLoginRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "missing credentials"})
		return
	}

	user, token, err := h.manager.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			writeJSON(w, http.StatusOK, loginResponse{IsAuth: false, Message: "Auth failed, email not found"})
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeJSON(w, http.StatusOK, loginResponse{IsAuth: false, Message: "password does not match"})
		default:
			log.Println("login failed: ", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error. try again."})
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   3600 * 24,
	})

	writeJSON(w, http.StatusOK, loginResponse{
		IsAuth: true,
		ID:     user.ID.String(),
		Email:  user.Email,
		Token:  token,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := auth.UserFromContext(r.Context())
	token, _ := auth.TokenFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "unauthorized"})
		return
	}

	if err := h.manager.Logout(r.Context(), user, token); err != nil {
		log.Printf("failed to delete token: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "logout failed"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})

	w.WriteHeader(http.StatusOK)
}

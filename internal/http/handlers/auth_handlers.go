package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/electronics-store/internal/auth"
	rl "github.com/rogerio-castellano/electronics-store/internal/http/rate_limiter"
	"github.com/rogerio-castellano/electronics-store/internal/models"
	"go.uber.org/zap"
)

// LoginHandler godoc
// @Summary Authenticate with HTTP Basic credentials and return a bearer token
// @Tags auth
// @Produce json
// @Security BasicAuth
// @Success 200 {object} LoginResult
// @Failure 401 {object} Message
// @Failure 429 {object} Message
// @Router /login [post]
func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ip := rl.ClientIP(r)
	log := h.logger(r)

	banned, err := h.Bans.Banned(ctx, ip)
	if err != nil {
		log.Warn("ban check failed", zap.String("ip", ip), zap.Error(err))
	}
	if banned {
		writeMessage(w, http.StatusTooManyRequests, "Demasiados intentos fallidos. Intente más tarde.")
		return
	}

	username, password, ok := r.BasicAuth()
	if !ok || username == "" || password == "" {
		writeMessage(w, http.StatusUnauthorized, "Falta el nombre de usuario o la contraseña")
		return
	}

	token, err := h.Auth.Login(ctx, username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.serverError(w, r, "could not log in", err)
			return
		}
		h.loginFailed(r, ip)
		writeMessage(w, http.StatusUnauthorized, "El usuario y la contraseña al parecer no coinciden")
		return
	}

	if err := h.Bans.Reset(ctx, ip); err != nil {
		log.Warn("failed to reset login failures", zap.String("ip", ip), zap.Error(err))
	}
	_ = writeJSON(w, http.StatusOK, LoginResult{Token: "Bearer " + token})
}

func (h *Handlers) loginFailed(r *http.Request, ip string) {
	log := h.logger(r)
	if h.Metrics != nil {
		h.Metrics.LoginFailures.Inc()
	}
	strikes, banned, err := h.Bans.RecordFailure(r.Context(), ip, r.URL.Path)
	if err != nil {
		log.Warn("failed to record login failure", zap.String("ip", ip), zap.Error(err))
		return
	}
	if banned {
		if h.Metrics != nil {
			h.Metrics.LoginBans.Inc()
		}
		log.Warn("client banned after failed logins", zap.String("ip", ip), zap.Int("strikes", strikes))
	}
}

// GetUsersHandler godoc
// @Summary List users
// @Description Administrators see id, username and admin flag; other users only usernames
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 401 {object} map[string]string
// @Router /users [get]
func (h *Handlers) GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Auth.ListUsers(r.Context())
	if err != nil {
		h.serverError(w, r, "could not fetch users", err)
		return
	}

	if claimsFrom(r).Administrador {
		_ = writeJSON(w, http.StatusOK, project(users, func(u models.User) UserResponse {
			return UserResponse{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
		}))
		return
	}
	_ = writeJSON(w, http.StatusOK, project(users, func(u models.User) MinimalUserResponse {
		return MinimalUserResponse{Username: u.Username}
	}))
}

// CreateUserHandler godoc
// @Summary Create a non-admin user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body CreateUserRequest true "User to create"
// @Success 201 {object} map[string]string
// @Failure 400 {object} Message
// @Failure 403 {object} Message
// @Router /users [post]
func (h *Handlers) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if !claims.Administrador {
		writeMessage(w, http.StatusForbidden, "Ud no está habilitado para crear un usuario.")
		return
	}

	var req CreateUserRequest
	if err := readJSON(w, r, &req); err != nil {
		badInput(w, err)
		return
	}
	if errs := validateInput(req); len(errs) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	user, err := h.Auth.CreateUser(r.Context(), claims, req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrUserExists):
		writeMessage(w, http.StatusBadRequest, "El usuario ya existe")
		return
	case errors.Is(err, auth.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Ud no está habilitado para crear un usuario.")
		return
	case err != nil:
		h.logger(r).Error("user create failed", zap.String("username", req.Username), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Fallo la creación del nuevo usuario")
		return
	}

	h.logger(r).Info("user created", zap.String("username", user.Username), zap.String("by", claims.Subject))
	_ = writeJSON(w, http.StatusCreated, map[string]string{"Usuario Creado": user.Username})
}

// GetBansHandler godoc
// @Summary List clients banned after repeated failed logins
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ban.BanLogEntry
// @Failure 403 {object} Message
// @Router /bans [get]
func (h *Handlers) GetBansHandler(w http.ResponseWriter, r *http.Request) {
	if !claimsFrom(r).Administrador {
		writeMessage(w, http.StatusForbidden, "No tiene permiso para consultar los bloqueos.")
		return
	}

	entries, err := h.Bans.BanLog(r.Context())
	if err != nil {
		h.serverError(w, r, "could not fetch ban log", err)
		return
	}
	_ = writeJSON(w, http.StatusOK, entries)
}

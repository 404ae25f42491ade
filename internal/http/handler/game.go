package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"zoomguess/internal/core"
	"zoomguess/internal/http/handler/middleware"
	"zoomguess/internal/http/payload"
	tokenIssuer "zoomguess/pkg/jwt"

	"go.uber.org/zap"
)

var (
	RegisterUser   = "POST /user"
	Authenticate   = "POST /user/authenticate"
	GetUser        = "GET /user/{id}"
	DeleteUser     = "DELETE /user/{id}"
	GetLeaderboard = "GET /leaderboard"
)

const authTokenHeader = "AUTH_TOKEN"

type GameHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	game             GameService
}

func NewGameHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, gameService GameService) *GameHandler {
	return &GameHandler{
		logs:             logger,
		requestValidator: requestValidator,
		game:             gameService,
	}
}

func (h *GameHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.RegisterRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register user",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RegisterUser,
			"request_id", requestId)
		return
	}

	user, err := h.game.Register(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not register user",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrDuplicateCredential) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("user registration failed",
			"error", err,
			"handler", RegisterUser,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"message": "User created",
		"user":    user,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *GameHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.game.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *GameHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   fmt.Sprintf("%s header is required", authTokenHeader),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing auth token header", "handler", GetUser, "request_id", requestId)
		return
	}

	userId, err := parseUserID(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("parse user id: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse user id",
			"error", err,
			"handler", GetUser,
			"request_id", requestId)
		return
	}

	user, err := h.game.GetUser(r.Context(), authToken, userId)
	if err != nil {
		h.respondUserError(w, err, "Could not retrieve user", GetUser, requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *GameHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   fmt.Sprintf("%s header is required", authTokenHeader),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing auth token header", "handler", DeleteUser, "request_id", requestId)
		return
	}

	userId, err := parseUserID(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("parse user id: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse user id",
			"error", err,
			"handler", DeleteUser,
			"request_id", requestId)
		return
	}

	if err := h.game.DeleteUser(r.Context(), authToken, userId); err != nil {
		h.respondUserError(w, err, "Could not delete user", DeleteUser, requestId)
		return
	}

	resp := map[string]string{
		"message": "User deleted",
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *GameHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	entries, err := h.game.Leaderboard(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve leaderboard",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to compute leaderboard",
			"error", err,
			"handler", GetLeaderboard,
			"request_id", requestId)
		return
	}

	h.logs.Infow("leaderboard retrieved",
		"entries", len(entries),
		"handler", GetLeaderboard,
		"request_id", requestId)

	h.respond(w, entries, http.StatusOK, requestId)
}

// respondUserError maps service errors from the user endpoints to status
// codes: invalid token -> 401, unknown user -> 404, anything else -> 500.
func (h *GameHandler) respondUserError(w http.ResponseWriter, err error, message, handlerName, requestId string) {
	resp := Response{
		Message: message,
	}
	httpCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, tokenIssuer.ErrTokenNotValid) || errors.Is(err, tokenIssuer.ErrTokenExpired):
		httpCode = http.StatusUnauthorized
		resp.Error = err.Error()
	case errors.Is(err, core.ErrUserNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	default:
		resp.Error = oopsErr
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("user request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *GameHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func parseUserID(r *http.Request) (uint, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("user id must be a positive integer: %w", err)
	}
	return uint(id), nil
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает доменную ошибку (сентинел пакета service),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: сентинелы пакета service.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogger-platform/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// sentinelRow — строка таблицы маппинга доменной ошибки в HTTP-ответ.
type sentinelRow struct {
	err    error
	status int
	code   string
	msg    string
}

// Порядок важен только для читабельности: сентинелы не пересекаются.
var table = []sentinelRow{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials", "invalid login or password"},
	{service.ErrNoRefreshToken, http.StatusUnauthorized, "no_refresh_token", "refresh token is missing"},
	{service.ErrInvalidRefreshToken, http.StatusUnauthorized, "invalid_refresh_token", "refresh token is invalid"},
	{service.ErrRefreshTokenExpired, http.StatusUnauthorized, "refresh_token_expired", "refresh token has expired"},
	{service.ErrSessionNotFound, http.StatusUnauthorized, "session_not_found", "session not found"},
	{service.ErrSessionIatMismatch, http.StatusUnauthorized, "session_iat_mismatch", "refresh token has been superseded"},
	{service.ErrInvalidToken, http.StatusUnauthorized, "invalid_token", "access token is invalid"},
	{service.ErrTokenExpired, http.StatusUnauthorized, "token_expired", "access token has expired"},
	{service.ErrForbidden, http.StatusForbidden, "forbidden", "forbidden"},
	{service.ErrDeviceNotFound, http.StatusNotFound, "device_not_found", "device session not found"},
	{service.ErrSessionConflict, http.StatusConflict, "session_conflict", "concurrent session rotation"},
	{service.ErrEmailTaken, http.StatusConflict, "email_taken", "email is already taken"},
	{service.ErrLoginTaken, http.StatusConflict, "login_taken", "login is already taken"},
	{service.ErrInvalidEmail, http.StatusBadRequest, "invalid_email", "email is invalid"},
	{service.ErrInvalidLogin, http.StatusBadRequest, "invalid_login", "login is invalid"},
	{service.ErrWeakPassword, http.StatusBadRequest, "weak_password", "password does not meet the policy"},
	{service.ErrEmptyPassword, http.StatusBadRequest, "empty_password", "password is empty"},
	{service.ErrInvalidCode, http.StatusBadRequest, "invalid_code", "code is invalid"},
	{service.ErrCodeExpired, http.StatusBadRequest, "code_expired", "code has expired"},
	{service.ErrEmailConfirmed, http.StatusBadRequest, "email_confirmed", "email is already confirmed"},
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг.
//   - неизвестная ошибка — 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err != nil {
		for _, row := range table {
			if errors.Is(err, row.err) {
				return row.status, ErrorResponse{
					Error: APIError{
						Code:    row.code,
						Message: row.msg,
					},
				}
			}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: APIError{
			Code:    "internal",
			Message: "internal error",
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteBadRequest отвечает 400 на синтаксически некорректный запрос
// (битый JSON, неизвестные поля, пустые обязательные параметры).
func WriteBadRequest(w http.ResponseWriter, r *http.Request) {
	resp := ErrorResponse{
		Error: APIError{
			Code:    "invalid_argument",
			Message: "invalid argument",
		},
	}

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteTooManyRequests отвечает 429 для сработавшего рейт-лимита.
func WriteTooManyRequests(w http.ResponseWriter, r *http.Request) {
	resp := ErrorResponse{
		Error: APIError{
			Code:    "too_many_requests",
			Message: "too many requests",
		},
	}

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(resp)
}

package handlers

import (
	"net/http"

	apierrors "blogger-platform/internal/errors"
	"blogger-platform/internal/http/middleware"
)

type loginRequest struct {
	LoginOrEmail string `json:"loginOrEmail"`
	Password     string `json:"password"`
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type registrationRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type confirmationRequest struct {
	Code string `json:"code"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type newPasswordRequest struct {
	NewPassword  string `json:"newPassword"`
	RecoveryCode string `json:"recoveryCode"`
}

type meResponse struct {
	Email  string `json:"email"`
	Login  string `json:"login"`
	UserID string `json:"userId"`
}

// Login — POST /auth/login.
// Успех: 200, access-токен в теле, refresh-токен в HttpOnly cookie.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteBadRequest(w, r)
		return
	}

	pair, err := h.svc.Login(r.Context(), in.LoginOrEmail, in.Password,
		middleware.ClientIP(r), r.UserAgent())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, accessTokenResponse{AccessToken: pair.AccessToken})
}

// Refresh — POST /auth/refresh-token (за refresh-guard-ом).
// Успех: 200, новая пара; cookie перезаписывается новым refresh-токеном.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	auth := middleware.AuthFrom(r.Context())

	pair, err := h.svc.Refresh(r.Context(), auth,
		middleware.ClientIP(r), r.UserAgent())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, accessTokenResponse{AccessToken: pair.AccessToken})
}

// Logout — POST /auth/logout (за refresh-guard-ом).
// Успех: 204, cookie очищается.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	auth := middleware.AuthFrom(r.Context())

	if err := h.svc.Logout(r.Context(), auth); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	h.clearRefreshCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me — GET /auth/me (за access-guard-ом).
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	auth := middleware.AuthFrom(r.Context())

	user, err := h.svc.Me(r.Context(), auth.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		Email:  user.Email,
		Login:  user.Login,
		UserID: user.ID.String(),
	})
}

// Registration — POST /auth/registration. Успех: 204, код подтверждения
// уходит на e-mail.
func (h *Handlers) Registration(w http.ResponseWriter, r *http.Request) {
	var in registrationRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteBadRequest(w, r)
		return
	}

	if _, err := h.svc.RegisterUser(r.Context(), in.Login, in.Email, in.Password); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegistrationConfirmation — POST /auth/registration-confirmation.
func (h *Handlers) RegistrationConfirmation(w http.ResponseWriter, r *http.Request) {
	var in confirmationRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteBadRequest(w, r)
		return
	}

	if err := h.svc.ConfirmEmail(r.Context(), in.Code); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegistrationEmailResending — POST /auth/registration-email-resending.
func (h *Handlers) RegistrationEmailResending(w http.ResponseWriter, r *http.Request) {
	var in emailRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteBadRequest(w, r)
		return
	}

	if err := h.svc.ResendConfirmation(r.Context(), in.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PasswordRecovery — POST /auth/password-recovery.
// 204 и для незарегистрированного e-mail — ответ не раскрывает наличие аккаунта.
func (h *Handlers) PasswordRecovery(w http.ResponseWriter, r *http.Request) {
	var in emailRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteBadRequest(w, r)
		return
	}

	if err := h.svc.RecoverPassword(r.Context(), in.Email); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NewPassword — POST /auth/new-password.
func (h *Handlers) NewPassword(w http.ResponseWriter, r *http.Request) {
	var in newPasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteBadRequest(w, r)
		return
	}

	if err := h.svc.NewPassword(r.Context(), in.RecoveryCode, in.NewPassword); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// setRefreshCookie выставляет refresh-токен в HttpOnly cookie.
// Path ограничен корнем: refresh-токен нужен и /auth/*, и (косвенно)
// /security/* через guard.
func (h *Handlers) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.RefreshCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearRefreshCookie стирает refresh-cookie (MaxAge<0 — немедленное удаление).
func (h *Handlers) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.RefreshCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

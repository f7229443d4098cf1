package service

import (
	"mallbook/shared/failure"
	"net/http"
)

// Identity rejections. Login never says which half of the credentials was wrong.
var (
	ErrEmailTaken          = failure.New(http.StatusConflict, "email already registered")
	ErrInvalidCredentials  = failure.New(http.StatusUnauthorized, "invalid email or password")
	ErrAccountDeactivated  = failure.New(http.StatusForbidden, "user account is deactivated")
	ErrInvalidRefreshToken = failure.New(http.StatusUnauthorized, "invalid refresh token")
	ErrUserNotFound        = failure.New(http.StatusNotFound, "user not found")
	ErrWrongPassword       = failure.New(http.StatusBadRequest, "current password is incorrect")
	ErrPasswordUnchanged   = failure.New(http.StatusBadRequest, "new password must differ from the current one")
	ErrPasswordTooLong     = failure.New(http.StatusBadRequest, "password must not exceed 72 bytes")
)

package dto_test

import (
	"encoding/json"
	"mallbook/infras/jwt"
	"mallbook/internal/domains/auth/model/dto"
	"mallbook/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pair = &jwt.TokenPair{
	AccessToken:  "access",
	RefreshToken: "refresh",
	TokenType:    "Bearer",
	ExpiresIn:    900,
}

func TestLoginResponse_FlattensTokens(t *testing.T) {
	var res dto.LoginResponse
	res.FromTokenPair(pair)
	res.User.Name = "Jane"

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "access", body["access_token"])
	assert.Equal(t, "refresh", body["refresh_token"])
	assert.Equal(t, "Bearer", body["token_type"])
	assert.InDelta(t, 900, body["expires_in"], 0)
	assert.Contains(t, body, "user")
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	var res dto.RefreshTokenResponse
	res.FromTokenPair(pair)

	assert.Equal(t, dto.Tokens{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}, res.Tokens)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	phone := "+62-811-000-111"

	req := dto.RegisterRequest{
		Email:    "  Jane@Example.com ",
		Password: "secret-password",
		Name:     "Jane",
		Phone:    &phone,
	}

	user := req.ToUserModel(constant.ContextGuest, "hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, &phone, user.Phone)
	assert.Equal(t, constant.RoleCustomer, user.Role, "self sign up never grants staff roles")
	assert.True(t, user.Active)
	assert.Equal(t, constant.ContextGuest, user.CreatedBy)
}

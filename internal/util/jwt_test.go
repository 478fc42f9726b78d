package util

import (
	"testing"
	"time"

	"github.com/antikleya/USEHelper/internal/model"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func testUser() *model.User {
	user := &model.User{
		Email:  "student@mail.ru",
		RoleID: model.RoleIDUser,
		Role:   model.Role{Name: model.RoleUser},
	}
	user.ID = 42
	return user
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.Equal(t, "student@mail.ru", claims.Email)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	assert.NoError(t, err)

	_, err = ParseJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	_, err := ParseJWT("not-a-jwt", testSecret)
	assert.Error(t, err)
}

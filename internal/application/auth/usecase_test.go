package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
	pkgjwt "github.com/jhoicas/vitrina-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "vitrina-api-test"
)

func newAuthFixture(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	uc, err := auth.NewAuthUseCase("admin", "admin123", auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	require.NoError(t, err)
	return uc
}

func TestLogin_CredencialCorrecta_EmiteToken(t *testing.T) {
	uc := newAuthFixture(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Username)
	assert.Equal(t, auth.RoleAdmin, out.Role)

	username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "el token emitido debe ser verificable")
	assert.Equal(t, "admin", username)
	assert.Equal(t, auth.RoleAdmin, role)
}

func TestLogin_ContrasenaIncorrecta_Retorna401(t *testing.T) {
	uc := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioIncorrecto_Retorna401(t *testing.T) {
	uc := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Username: "root", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario y contraseña incorrectos producen el mismo error, sin pista de cuál
// de los dos falló.
func TestLogin_ErrorIndistinguible(t *testing.T) {
	uc := newAuthFixture(t)

	_, errUser := uc.Login(dto.LoginRequest{Username: "root", Password: "admin123"})
	_, errPass := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.Equal(t, errUser.Error(), errPass.Error())
}

func TestNewAuthUseCase_CredencialVacia_Falla(t *testing.T) {
	_, err := auth.NewAuthUseCase("", "admin123", auth.JWTConfig{Secret: testSecret})
	assert.Error(t, err)

	_, err = auth.NewAuthUseCase("admin", "", auth.JWTConfig{Secret: testSecret})
	assert.Error(t, err)
}

package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin único rol del back-office.
const RoleAdmin = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del administrador. Hay una única credencial configurada;
// la contraseña se guarda como hash bcrypt desde la construcción para que la
// comparación en Login sea siempre contra hash.
type AuthUseCase struct {
	username     string
	passwordHash []byte
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso con la credencial configurada.
func NewAuthUseCase(username, password string, jwtCfg JWTConfig) (*AuthUseCase, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("auth: credencial de administrador vacía")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthUseCase{username: username, passwordHash: hash, jwtCfg: jwtCfg}, nil
}

// Login verifica usuario y contraseña y emite un JWT. Usuario y contraseña
// incorrectos devuelven el mismo ErrUnauthorized, sin distinguir cuál falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(in.Password))
	if !userOK || passErr != nil {
		return nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthorized)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.username, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: uc.username, Role: RoleAdmin}, nil
}

package auth

import (
	"github.com/abelfynine/inventario-api/internal/application/dto"
	"github.com/abelfynine/inventario-api/internal/domain"
	"github.com/abelfynine/inventario-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credenciales usuario administrador configurado (hash bcrypt).
type Credenciales struct {
	Usuario      string
	PasswordHash string
}

// UseCase caso de uso de sesión: la app tiene un único usuario definido por
// configuración; el proveedor de identidad solo abre la puerta, no es parte
// de la lógica de inventario.
type UseCase struct {
	cred   Credenciales
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de sesión.
func NewUseCase(cred Credenciales, jwtCfg JWTConfig) *UseCase {
	return &UseCase{cred: cred, jwtCfg: jwtCfg}
}

// Login verifica usuario y contraseña contra las credenciales configuradas y
// emite un JWT. Cualquier desajuste devuelve ErrUnauthorized sin distinguir
// si falló el usuario o la contraseña.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Usuario != uc.cred.Usuario {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cred.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Usuario, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: in.Usuario}, nil
}

// Session valida un token y devuelve el estado de la sesión. Un token ausente
// o inválido no es un error: la sesión simplemente no está activa.
func (uc *UseCase) Session(token string) dto.SessionResponse {
	if token == "" {
		return dto.SessionResponse{Activa: false}
	}
	usuario, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return dto.SessionResponse{Activa: false}
	}
	return dto.SessionResponse{Activa: true, Usuario: usuario}
}

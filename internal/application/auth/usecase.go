package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/domain/repository"
	"github.com/JoaquinSpengler/api-autos/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro y login de usuarios. La contraseña se guarda solo
// como hash bcrypt y se compara con bcrypt, nunca por igualdad de texto.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registrar crea un usuario con la contraseña hasheada.
func (uc *AuthUseCase) Registrar(in dto.RegistrarRequest) (*dto.UsuarioResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		DNI:          in.DNI,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Habilitado:   true,
		CreadoEn:     time.Now(),
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return usuarioToResponse(u), nil
}

// Login verifica credenciales y devuelve un JWT con el rol del usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if !u.Habilitado {
		return nil, domain.ErrCredencialesInvalidas
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: *usuarioToResponse(u)}, nil
}

// Listar devuelve todos los usuarios (sin hashes).
func (uc *AuthUseCase) Listar() ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, *usuarioToResponse(u))
	}
	return out, nil
}

func usuarioToResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:         u.ID,
		Nombre:     u.Nombre,
		Apellido:   u.Apellido,
		DNI:        u.DNI,
		Email:      u.Email,
		Rol:        u.Rol,
		Habilitado: u.Habilitado,
	}
}

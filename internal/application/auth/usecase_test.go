package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoaquinSpengler/api-autos/internal/application/auth"
	"github.com/JoaquinSpengler/api-autos/internal/application/dto"
	"github.com/JoaquinSpengler/api-autos/internal/domain"
	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	pkgjwt "github.com/JoaquinSpengler/api-autos/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "api-autos-test"
)

type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porEmail: make(map[string]*entity.Usuario)}
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := f.porEmail[u.Email]; ok {
		return domain.ErrDuplicado
	}
	copia := *u
	f.porEmail[u.Email] = &copia
	return nil
}

func (f *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	u, ok := f.porEmail[email]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (f *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.porEmail {
		copia := *u
		out = append(out, &copia)
	}
	return out, nil
}

func nuevoAuthUC(repo *fakeUsuarioRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

func TestRegistrarYLogin(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := nuevoAuthUC(repo)

	u, err := uc.Registrar(dto.RegistrarRequest{
		Nombre:   "Ana",
		Email:    "ana@flota.test",
		Password: "contraseña-larga",
		Rol:      "admin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	// La contraseña nunca se guarda en texto plano.
	guardado, _ := repo.GetByEmail("ana@flota.test")
	require.NotNil(t, guardado)
	assert.NotContains(t, guardado.PasswordHash, "contraseña-larga")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@flota.test", Password: "contraseña-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	// El token lleva el ID y el rol del usuario.
	userID, rol, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, "admin", rol)
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	uc := nuevoAuthUC(newFakeUsuarioRepo())

	req := dto.RegistrarRequest{Nombre: "Ana", Email: "ana@flota.test", Password: "contraseña-larga", Rol: "admin"}
	_, err := uc.Registrar(req)
	require.NoError(t, err)

	_, err = uc.Registrar(req)
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := nuevoAuthUC(repo)
	_, err := uc.Registrar(dto.RegistrarRequest{Nombre: "Ana", Email: "ana@flota.test", Password: "contraseña-larga", Rol: "admin"})
	require.NoError(t, err)

	// El mismo error para usuario inexistente y contraseña incorrecta:
	// la respuesta no revela cuál de los dos falló.
	_, err = uc.Login(dto.LoginRequest{Email: "nadie@flota.test", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@flota.test", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestLogin_UsuarioDeshabilitado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := nuevoAuthUC(repo)
	_, err := uc.Registrar(dto.RegistrarRequest{Nombre: "Ana", Email: "ana@flota.test", Password: "contraseña-larga", Rol: "admin"})
	require.NoError(t, err)

	repo.porEmail["ana@flota.test"].Habilitado = false

	_, err = uc.Login(dto.LoginRequest{Email: "ana@flota.test", Password: "contraseña-larga"})
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

// seedadmin crea el usuario administrador inicial contra la base configurada.
//
// Uso: go run ./cmd/seedadmin <email> <password>
// Lee la configuración de base de datos del entorno (igual que cmd/api).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JoaquinSpengler/api-autos/internal/domain/entity"
	"github.com/JoaquinSpengler/api-autos/internal/infrastructure/postgres"
	"github.com/JoaquinSpengler/api-autos/pkg/config"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "uso: seedadmin <email> <password>")
		os.Exit(1)
	}
	email, password := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	admin := &entity.Usuario{
		ID:           uuid.NewString(),
		Nombre:       "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Rol:          "admin",
		Habilitado:   true,
		CreadoEn:     time.Now(),
	}
	if err := usuarioRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("usuario admin creado: %s (%s)\n", admin.Email, admin.ID)
}

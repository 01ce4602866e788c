// Command token mints a bearer token for local use. Accounts live outside
// this service, so the subject is any UUID and the role one of admin or tecnico.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fleet-workflow/internal/domain/user"
	"fleet-workflow/internal/pkg/config"
	"fleet-workflow/internal/pkg/jwt"

	"github.com/google/uuid"
)

func main() {
	role := flag.String("role", string(user.RoleTecnico), "admin or tecnico")
	subject := flag.String("sub", "", "user id; random when empty")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	r, err := user.NewRole(*role)
	if err != nil {
		slog.Error("invalid role", "role", *role, "error", err)
		os.Exit(1)
	}

	id := uuid.New()
	if *subject != "" {
		if id, err = uuid.Parse(*subject); err != nil {
			slog.Error("invalid user id", "sub", *subject, "error", err)
			os.Exit(1)
		}
	}

	token, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration).GenerateToken(id, r)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

// token emite un JWT de operador para la API de validación.
//
// Uso: go run ./cmd/token --user ana@empresa.pt --role auditor
package main

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/jhoicas/saftpt-validator/pkg/config"
	"github.com/jhoicas/saftpt-validator/pkg/jwt"
)

type cli struct {
	User string `required:"" help:"Identificador del operador."`
	Role string `default:"auditor" enum:"admin,auditor" help:"Rol del token (admin | auditor)."`
}

func (c *cli) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	token, err := issue(cfg.JWT, c.User, c.Role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("token"),
		kong.Description("Emite un JWT de operador para la API de validación SAF-T (PT)."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

func issue(c config.JWTConfig, user, role string) (string, error) {
	if user == "" {
		return "", errors.New("--user es obligatorio")
	}
	if role != jwt.RoleAdmin && role != jwt.RoleAuditor {
		return "", fmt.Errorf("rol %q no válido", role)
	}
	if c.Secret == "" {
		return "", errors.New("JWT_SECRET no configurado")
	}
	return jwt.Generate(c.Secret, user, role, c.Issuer, c.Expiration)
}

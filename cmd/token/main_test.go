package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saftpt-validator/pkg/config"
	"github.com/jhoicas/saftpt-validator/pkg/jwt"
)

func TestIssue(t *testing.T) {
	c := config.JWTConfig{Secret: "s3cr3t", Expiration: 5, Issuer: "saftpt-validator"}

	token, err := issue(c, "ana", jwt.RoleAdmin)
	require.NoError(t, err)
	user, role, err := jwt.Parse(c.Secret, token)
	require.NoError(t, err)
	assert.Equal(t, "ana", user)
	assert.Equal(t, jwt.RoleAdmin, role)
}

func TestIssue_Rechazos(t *testing.T) {
	c := config.JWTConfig{Secret: "s3cr3t", Expiration: 5}

	_, err := issue(c, "", jwt.RoleAuditor)
	assert.Error(t, err)
	_, err = issue(c, "ana", "vendedor")
	assert.Error(t, err)
	_, err = issue(config.JWTConfig{}, "ana", jwt.RoleAuditor)
	assert.Error(t, err)
}

func TestCLI_Flags(t *testing.T) {
	var c cli
	parser, err := kong.New(&c, kong.Name("token"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--user", "ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana", c.User)
	assert.Equal(t, jwt.RoleAuditor, c.Role, "rol por defecto")

	_, err = parser.Parse([]string{"--user", "ana", "--role", "vendedor"})
	assert.Error(t, err, "rol fuera del enum")

	var fresh cli
	parser, err = kong.New(&fresh, kong.Name("token"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--role", "admin"})
	assert.Error(t, err, "--user es obligatorio")
}

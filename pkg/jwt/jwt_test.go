package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/saftpt-validator/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate("secreto", "u1", jwt.RoleAuditor, "saftpt-validator", 5)
	require.NoError(t, err)

	userID, role, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, jwt.RoleAuditor, role)
}

func TestParse_Rechazos(t *testing.T) {
	token, err := jwt.Generate("secreto", "u1", jwt.RoleAdmin, "", 5)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro", token)
	assert.Error(t, err, "firma incorrecta")

	expired, err := jwt.Generate("secreto", "u1", jwt.RoleAdmin, "", -1)
	require.NoError(t, err)
	_, _, err = jwt.Parse("secreto", expired)
	assert.Error(t, err, "expirado")

	_, _, err = jwt.Parse("", token)
	assert.Error(t, err)

	_, err = jwt.Generate("", "u1", jwt.RoleAdmin, "", 5)
	assert.Error(t, err)
}

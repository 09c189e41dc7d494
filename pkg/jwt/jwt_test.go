package jwt_test

import (
	"testing"

	"go-business-ws/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	id := uuid.New()

	token, err := jwt.GenerateToken(id, "ops@example.com", "Ops", "admin", "v1")
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "v1", claims.TokenVersion)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first")
	token, err := jwt.GenerateToken(uuid.New(), "a@example.com", "A", "staff", "v1")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second")
	_, err = jwt.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Empty(t *testing.T) {
	_, err := jwt.ValidateToken("")
	assert.ErrorIs(t, err, jwt.ErrMissingToken)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := &jwt.Claims{UserID: uuid.New(), Role: "admin"}
	claims.Issuer = "go-business-ws"
	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwt.ValidateToken(unsigned)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestFromHeader(t *testing.T) {
	cases := []struct {
		header string
		token  string
		err    error
	}{
		{"Bearer abc.def", "abc.def", nil},
		{"bearer  abc.def ", "abc.def", nil},
		{"", "", jwt.ErrMissingToken},
		{"Bearer ", "", jwt.ErrInvalidScheme},
		{"Basic abc", "", jwt.ErrInvalidScheme},
		{"abc.def", "", jwt.ErrInvalidScheme},
	}
	for _, tc := range cases {
		token, err := jwt.FromHeader(tc.header)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.header)
			continue
		}
		require.NoError(t, err, tc.header)
		assert.Equal(t, tc.token, token)
	}
}

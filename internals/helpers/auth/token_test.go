package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "rahasia-test"

func TestIssueAndParseAccessToken(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	tok, exp, err := IssueAccessToken(testSecret, AccessClaims{
		UserID: id, Name: "Pak RT", Role: "rt", RT: "001", RW: "002",
	}, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(AccessTokenTTL), exp, time.Second)

	got, err := ParseAccessToken(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, id, got.UserID)
	assert.Equal(t, "Pak RT", got.Name)
	assert.Equal(t, "rt", got.Role)
	assert.Equal(t, "001", got.RT)
	assert.Equal(t, "002", got.RW)
	assert.Equal(t, exp.Unix(), got.Exp.Unix())
}

func TestIssueAccessToken_EmptySecret(t *testing.T) {
	_, _, err := IssueAccessToken("  ", AccessClaims{UserID: uuid.New(), Role: "admin"}, time.Now())
	assert.Error(t, err)
}

func TestParseAccessToken_Rejects(t *testing.T) {
	valid, _, err := IssueAccessToken(testSecret, AccessClaims{UserID: uuid.New(), Role: "admin"}, time.Now())
	require.NoError(t, err)

	expired, _, err := IssueAccessToken(testSecret, AccessClaims{UserID: uuid.New(), Role: "admin"}, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "bukan-uuid",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	cases := map[string]struct {
		secret string
		raw    string
	}{
		"wrong secret": {"lain", valid},
		"expired":      {testSecret, expired},
		"missing role": {testSecret, noRole},
		"invalid id":   {testSecret, badID},
		"garbage":      {testSecret, "abc.def.ghi"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAccessToken(tc.secret, tc.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPasswordHash(t *testing.T) {
	h, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", h)
	assert.NoError(t, CheckPasswordHash(h, "rahasia123"))
	assert.Error(t, CheckPasswordHash(h, "salah"))
}

package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestScopeContains(t *testing.T) {
	admin := AdminScope()
	rt := RTScope("001", "002")

	assert.True(t, admin.Contains("009", "009"))
	assert.True(t, admin.Contains("", ""))
	assert.True(t, rt.Contains("001", "002"))
	assert.False(t, rt.Contains("001", "003"))
	assert.False(t, rt.Contains("002", "002"))
	assert.False(t, RTScope("", "").Contains("", ""))
}

func withLocals(t *testing.T, locals map[string]any) *fiber.Ctx {
	t.Helper()
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	t.Cleanup(func() { app.ReleaseCtx(c) })
	for k, v := range locals {
		c.Locals(k, v)
	}
	return c
}

func TestScopeFromCtx(t *testing.T) {
	id := uuid.New()

	s, err := ScopeFromCtx(withLocals(t, map[string]any{
		LocalRole: "admin", LocalUserID: id.String(), LocalRT: "001", LocalRW: "002",
	}))
	require.NoError(t, err)
	assert.True(t, s.IsAdmin())
	assert.Equal(t, id, s.UserID)
	assert.Empty(t, s.RT)

	s, err = ScopeFromCtx(withLocals(t, map[string]any{
		LocalRole: "rt", LocalRT: "001", LocalRW: "002",
	}))
	require.NoError(t, err)
	assert.Equal(t, "001", s.RT)
	assert.Equal(t, "002", s.RW)

	_, err = ScopeFromCtx(withLocals(t, map[string]any{LocalRole: "rt", LocalRT: "001"}))
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)

	_, err = ScopeFromCtx(withLocals(t, nil))
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
}

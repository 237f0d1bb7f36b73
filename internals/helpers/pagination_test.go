package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, query string, opt Options) Params {
	t.Helper()
	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "created_at", "desc", opt)
		return c.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/?"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	return got
}

func TestParseFiber(t *testing.T) {
	cases := []struct {
		name  string
		query string
		opt   Options
		want  Params
	}{
		{"defaults", "", DefaultOpts, Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"}},
		{"explicit", "page=3&per_page=10&sort_by=nama&order=ASC", DefaultOpts, Params{Page: 3, PerPage: 10, SortBy: "nama", SortOrder: "asc"}},
		{"limit alias", "limit=5", DefaultOpts, Params{Page: 1, PerPage: 5, SortBy: "created_at", SortOrder: "desc"}},
		{"clamped", "page=-2&per_page=9999", DefaultOpts, Params{Page: 1, PerPage: 200, SortBy: "created_at", SortOrder: "desc"}},
		{"bad order", "order=sideways", DefaultOpts, Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"}},
		{"all for admin", "page=4&per_page=all", AdminOpts, Params{Page: 1, PerPage: 10_000, SortBy: "created_at", SortOrder: "desc", All: true}},
		{"all not allowed", "per_page=all", DefaultOpts, Params{Page: 1, PerPage: 25, SortBy: "created_at", SortOrder: "desc"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseQuery(t, tc.query, tc.opt))
		})
	}
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"created_at": "created_at", "nama": "nama"}

	assert.Equal(t, "nama ASC", Params{SortBy: "nama", SortOrder: "asc"}.OrderClause(allowed, "created_at"))
	assert.Equal(t, "created_at DESC", Params{SortBy: "nik; DROP TABLE warga", SortOrder: "asc "}.OrderClause(allowed, "created_at"))
	assert.Equal(t, "", Params{SortBy: "x"}.OrderClause(allowed, "tidak_ada"))
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(51, Params{Page: 2, PerPage: 25})
	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)
	require.NotNil(t, m.NextPage)
	assert.Equal(t, 3, *m.NextPage)
	require.NotNil(t, m.PrevPage)
	assert.Equal(t, 1, *m.PrevPage)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Zero(t, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.Nil(t, empty.NextPage)
	assert.Nil(t, empty.PrevPage)
}

func TestIsUniqueViolation_Message(t *testing.T) {
	assert.True(t, IsUniqueViolation(fiber.NewError(500, `ERROR: duplicate key value violates unique constraint "uq_users_phone"`)))
	assert.False(t, IsUniqueViolation(fiber.ErrBadRequest))
}

package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_String(t *testing.T) {
	assert.Equal(t, "", Empty().String())
	assert.Equal(t, "abc", Text("abc").String())
	assert.Equal(t, "3214123456789012", Number(3214123456789012).String())
	assert.Equal(t, "1", Number(1).String())
	assert.Equal(t, "1.5", Number(1.5).String())
}

func TestCell_Truthy(t *testing.T) {
	assert.False(t, Empty().Truthy())
	assert.False(t, Text("").Truthy())
	assert.False(t, Number(0).Truthy())
	assert.True(t, Text(" ").Truthy())
	assert.True(t, Text("0").Truthy())
	assert.True(t, Number(-1).Truthy())
}

func TestCell_Or(t *testing.T) {
	assert.Equal(t, "def", Empty().Or("def"))
	assert.Equal(t, "def", Number(0).Or("def"))
	assert.Equal(t, "x", Text("x").Or("def"))
}

func TestCell_AsDate(t *testing.T) {
	cases := []struct {
		name string
		cell Cell
		want string
	}{
		{"serial epoch", Number(25569), "1970-01-01"},
		{"serial", Number(32888), "1990-01-15"},
		{"serial with time fraction", Number(32888.75), "1990-01-15"},
		{"iso text", Text("1990-01-15"), "1990-01-15"},
		{"slash text", Text("1990/01/15"), "1990-01-15"},
		{"garbage passthrough", Text("tidak tahu"), "tidak tahu"},
		{"empty", Empty(), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cell.AsDate())
		})
	}
}

func TestRow_GetMissing(t *testing.T) {
	var r Row
	assert.Equal(t, KindEmpty, r.Get("nik").Kind)

	r = Row{Cells: map[string]Cell{"nik": Text("1")}}
	assert.Equal(t, "1", r.Get("nik").String())
	assert.False(t, r.Get("nama").Truthy())
}

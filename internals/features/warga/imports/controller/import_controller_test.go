package controller

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/imports/service"
)

func errorsN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Baris %d: NIK kosong", i+2)
	}
	return out
}

func TestToPreview_CapsErrorPreview(t *testing.T) {
	p := toPreview(service.Result{Errors: errorsN(8)})

	assert.Len(t, p.Errors, 8)
	assert.Equal(t, errorsN(8)[:5], p.ErrorPreview)
	assert.Equal(t, 3, p.MoreErrors)
}

func TestToPreview_FewErrors(t *testing.T) {
	valid := []service.ImportRow{{NIK: "3214000000000001", Nama: "A"}}
	p := toPreview(service.Result{Valid: valid, Errors: errorsN(5)})

	assert.Equal(t, valid, p.ValidRows)
	assert.Len(t, p.ErrorPreview, 5)
	assert.Zero(t, p.MoreErrors)
}

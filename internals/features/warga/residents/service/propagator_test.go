package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	"github.com/pesafrisma19/wargakemang/internals/helpers/metrics"
)

func strp(s string) *string { return &s }

func familyMember(nama, noKK string) model.ResidentModel {
	return model.ResidentModel{ID: uuid.New(), Nama: nama, NoKK: strp(noKK)}
}

func TestPropagate_UpdatesOtherMembersOnly(t *testing.T) {
	saved := familyMember("AHMAD", "K1")
	saved.FotoKK = strp("https://x/kk.webp")
	sibling := familyMember("SITI", "K1")
	other := familyMember("DEDI", "K2")
	repo := newFakeRepo(saved, sibling, other)

	n := FamilyPhotoPropagator{Writer: repo}.Propagate(context.Background(), &saved, true)

	assert.Equal(t, int64(1), n)
	require.Len(t, repo.photoCalls, 1)
	assert.Equal(t, photoCall{NoKK: "K1", Exclude: saved.ID, URL: "https://x/kk.webp"}, repo.photoCalls[0])
	assert.Equal(t, "https://x/kk.webp", *repo.rows[sibling.ID].FotoKK)
	assert.Nil(t, repo.rows[other.ID].FotoKK)
}

func TestPropagate_SkipsWhenNotApplicable(t *testing.T) {
	withPhoto := familyMember("A", "K1")
	withPhoto.FotoKK = strp("u")

	noFamily := model.ResidentModel{ID: uuid.New(), FotoKK: strp("u")}
	emptyFamily := model.ResidentModel{ID: uuid.New(), NoKK: strp(""), FotoKK: strp("u")}
	noPhoto := familyMember("B", "K1")

	cases := []struct {
		name  string
		saved *model.ResidentModel
		fresh bool
	}{
		{"no fresh upload", &withPhoto, false},
		{"no family number", &noFamily, true},
		{"empty family number", &emptyFamily, true},
		{"no photo on record", &noPhoto, true},
		{"nil record", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			n := FamilyPhotoPropagator{Writer: repo}.Propagate(context.Background(), tc.saved, tc.fresh)
			assert.Zero(t, n)
			assert.Empty(t, repo.photoCalls)
		})
	}
}

func TestPropagate_FailureIsSwallowedAndCounted(t *testing.T) {
	saved := familyMember("A", "K9")
	saved.FotoKK = strp("u")
	repo := newFakeRepo()
	repo.photoErr = errors.New("db down")

	before := testutil.ToFloat64(metrics.PhotoPropagationFailures)
	n := FamilyPhotoPropagator{Writer: repo}.Propagate(context.Background(), &saved, true)

	assert.Zero(t, n)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PhotoPropagationFailures))
}

func TestPropagate_NilWriter(t *testing.T) {
	saved := familyMember("A", "K1")
	saved.FotoKK = strp("u")
	assert.Zero(t, FamilyPhotoPropagator{}.Propagate(context.Background(), &saved, true))
}

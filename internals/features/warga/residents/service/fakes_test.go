package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/model"
	"github.com/pesafrisma19/wargakemang/internals/features/warga/residents/repository"
	helper "github.com/pesafrisma19/wargakemang/internals/helpers"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

// fakeRepo: repository in-memory, cukup untuk service test
type fakeRepo struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]*model.ResidentModel
	saveErr error

	photoCalls []photoCall
	photoErr   error
}

type photoCall struct {
	NoKK    string
	Exclude uuid.UUID
	URL     string
}

func newFakeRepo(seed ...model.ResidentModel) *fakeRepo {
	r := &fakeRepo{rows: map[uuid.UUID]*model.ResidentModel{}}
	for i := range seed {
		m := seed[i]
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		r.rows[m.ID] = &m
	}
	return r
}

func (r *fakeRepo) nikTaken(nik string, exclude uuid.UUID) *model.ResidentModel {
	for _, m := range r.rows {
		if m.NIK == nik && m.ID != exclude {
			return m
		}
	}
	return nil
}

func (r *fakeRepo) Create(_ context.Context, m *model.ResidentModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if r.nikTaken(m.NIK, uuid.Nil) != nil {
		return repository.ErrDuplicateNIK
	}
	m.ID = uuid.New()
	cp := *m
	r.rows[m.ID] = &cp
	return nil
}

func (r *fakeRepo) Save(_ context.Context, m *model.ResidentModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	if r.nikTaken(m.NIK, m.ID) != nil {
		return repository.ErrDuplicateNIK
	}
	cp := *m
	r.rows[m.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ResidentModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeRepo) FindByNIK(_ context.Context, nik string, excludeID *uuid.UUID) (*model.ResidentModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex := uuid.Nil
	if excludeID != nil {
		ex = *excludeID
	}
	if m := r.nikTaken(nik, ex); m != nil {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRepo) FindByNIKs(_ context.Context, niks []string) ([]model.ResidentModel, error) {
	return nil, errors.New("not used")
}

func (r *fakeRepo) List(context.Context, helperAuth.Scope, repository.ListFilter, helper.Params) ([]model.ResidentModel, int64, error) {
	return nil, 0, errors.New("not used")
}

func (r *fakeRepo) ListAll(context.Context, helperAuth.Scope, repository.ListFilter) ([]model.ResidentModel, error) {
	return nil, errors.New("not used")
}

func (r *fakeRepo) ListWithFamily(context.Context, helperAuth.Scope) ([]model.ResidentModel, error) {
	return nil, errors.New("not used")
}

func (r *fakeRepo) FindByFamily(context.Context, helperAuth.Scope, string) ([]model.ResidentModel, error) {
	return nil, errors.New("not used")
}

func (r *fakeRepo) UpdateFamilyPhoto(_ context.Context, noKK string, excludeID uuid.UUID, url string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.photoCalls = append(r.photoCalls, photoCall{NoKK: noKK, Exclude: excludeID, URL: url})
	if r.photoErr != nil {
		return 0, r.photoErr
	}
	var n int64
	for _, m := range r.rows {
		if m.FamilyNo() == noKK && m.ID != excludeID {
			u := url
			m.FotoKK = &u
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) Stats(context.Context, helperAuth.Scope) (repository.Stats, error) {
	return repository.Stats{}, errors.New("not used")
}

func (r *fakeRepo) Recent(context.Context, helperAuth.Scope, int) ([]model.ResidentModel, error) {
	return nil, errors.New("not used")
}

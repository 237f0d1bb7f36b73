package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesafrisma19/wargakemang/internals/features/users/user/dto"
	"github.com/pesafrisma19/wargakemang/internals/features/users/user/model"
	helperAuth "github.com/pesafrisma19/wargakemang/internals/helpers/auth"
)

type fakeUsers struct {
	byID map[uuid.UUID]*model.UserModel
	err  error
}

func newFakeUsers(seed ...model.UserModel) *fakeUsers {
	f := &fakeUsers{byID: map[uuid.UUID]*model.UserModel{}}
	for i := range seed {
		u := seed[i]
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		f.byID[u.ID] = &u
	}
	return f
}

func (f *fakeUsers) List(context.Context) ([]model.UserModel, error) {
	var out []model.UserModel
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, f.err
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*model.UserModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUsers) FindByPhone(_ context.Context, phone string) (*model.UserModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Create(_ context.Context, u *model.UserModel) error {
	u.ID = uuid.New()
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) Save(_ context.Context, u *model.UserModel) error {
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id uuid.UUID, hash string) (int64, error) {
	u, ok := f.byID[id]
	if !ok {
		return 0, nil
	}
	u.PasswordHash = hash
	return 1, nil
}

func (f *fakeUsers) Count(context.Context) (int64, error) { return int64(len(f.byID)), nil }

func code(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "bukan *fiber.Error: %v", err)
	return fe.Code
}

func sp(s string) *string { return &s }

func TestCreate_Validation(t *testing.T) {
	svc := NewUserService(newFakeUsers(model.UserModel{Phone: "0811", Name: "Lama", Role: "admin"}))

	cases := []struct {
		name string
		req  dto.CreateUserRequest
		want int
	}{
		{"missing field", dto.CreateUserRequest{Name: "A", Phone: "0812", Role: "rt"}, fiber.StatusBadRequest},
		{"short password", dto.CreateUserRequest{Name: "A", Phone: "0812", Password: "123", Role: "rt", RT: "001", RW: "001"}, fiber.StatusBadRequest},
		{"bad role", dto.CreateUserRequest{Name: "A", Phone: "0812", Password: "123456", Role: "lurah"}, fiber.StatusBadRequest},
		{"rt without area", dto.CreateUserRequest{Name: "A", Phone: "0812", Password: "123456", Role: "rt"}, fiber.StatusBadRequest},
		{"phone taken", dto.CreateUserRequest{Name: "A", Phone: "0811", Password: "123456", Role: "admin"}, fiber.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			_, err := svc.Create(context.Background(), &req)
			assert.Equal(t, tc.want, code(t, err))
		})
	}
}

func TestCreate_HashesPasswordAndClearsAdminArea(t *testing.T) {
	repo := newFakeUsers()
	svc := NewUserService(repo)

	u, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name: "Admin", Phone: "0812", Password: "rahasia", Role: "admin", RT: "001", RW: "001",
	})
	require.NoError(t, err)
	assert.Nil(t, u.RT)
	assert.Nil(t, u.RW)
	assert.NotEqual(t, "rahasia", u.PasswordHash)
	assert.NoError(t, helperAuth.CheckPasswordHash(u.PasswordHash, "rahasia"))

	rt, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Name: "Pak RT", Phone: "0813", Password: "rahasia", Role: "rt", RT: "003", RW: "001",
	})
	require.NoError(t, err)
	gotRT, gotRW := rt.Area()
	assert.Equal(t, "003", gotRT)
	assert.Equal(t, "001", gotRW)
}

func TestUpdate_RoleChangeToRTNeedsArea(t *testing.T) {
	admin := model.UserModel{ID: uuid.New(), Phone: "0811", Name: "A", Role: "admin"}
	svc := NewUserService(newFakeUsers(admin))

	_, err := svc.Update(context.Background(), admin.ID, &dto.UpdateUserRequest{Role: sp("rt")})
	assert.Equal(t, fiber.StatusBadRequest, code(t, err))

	u, err := svc.Update(context.Background(), admin.ID, &dto.UpdateUserRequest{Role: sp("rt"), RT: sp("002"), RW: sp("004")})
	require.NoError(t, err)
	rt, rw := u.Area()
	assert.Equal(t, "002", rt)
	assert.Equal(t, "004", rw)
}

func TestUpdate_PhoneConflictAndMissing(t *testing.T) {
	a := model.UserModel{ID: uuid.New(), Phone: "0811", Name: "A", Role: "admin"}
	b := model.UserModel{ID: uuid.New(), Phone: "0822", Name: "B", Role: "admin"}
	svc := NewUserService(newFakeUsers(a, b))

	_, err := svc.Update(context.Background(), a.ID, &dto.UpdateUserRequest{Phone: sp("0822")})
	assert.Equal(t, fiber.StatusConflict, code(t, err))

	// nomor sendiri tidak dianggap bentrok
	_, err = svc.Update(context.Background(), a.ID, &dto.UpdateUserRequest{Phone: sp("0811"), Name: sp("A2")})
	assert.NoError(t, err)

	_, err = svc.Update(context.Background(), uuid.New(), &dto.UpdateUserRequest{Name: sp("X")})
	assert.Equal(t, fiber.StatusNotFound, code(t, err))
}

func TestDelete(t *testing.T) {
	self := model.UserModel{ID: uuid.New(), Phone: "0811", Role: "admin"}
	other := model.UserModel{ID: uuid.New(), Phone: "0822", Role: "rt"}
	repo := newFakeUsers(self, other)
	svc := NewUserService(repo)

	assert.Equal(t, fiber.StatusBadRequest, code(t, svc.Delete(context.Background(), self.ID, self.ID)))
	require.NoError(t, svc.Delete(context.Background(), self.ID, other.ID))
	assert.Equal(t, fiber.StatusNotFound, code(t, svc.Delete(context.Background(), self.ID, other.ID)))
}

func TestResetPassword(t *testing.T) {
	u := model.UserModel{ID: uuid.New(), Phone: "0811", Role: "admin", PasswordHash: "lama"}
	repo := newFakeUsers(u)
	svc := NewUserService(repo)

	assert.Equal(t, fiber.StatusBadRequest, code(t, svc.ResetPassword(context.Background(), u.ID, "123")))
	require.NoError(t, svc.ResetPassword(context.Background(), u.ID, "passbaru"))
	assert.NoError(t, helperAuth.CheckPasswordHash(repo.byID[u.ID].PasswordHash, "passbaru"))
	assert.Equal(t, fiber.StatusNotFound, code(t, svc.ResetPassword(context.Background(), uuid.New(), "passbaru")))
}

func TestList_RepoError(t *testing.T) {
	repo := newFakeUsers()
	repo.err = errors.New("db down")
	_, err := NewUserService(repo).List(context.Background())
	assert.Equal(t, fiber.StatusInternalServerError, code(t, err))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "081234567890", dto.NormalizePhone(" 0812-3456 7890 "))
}

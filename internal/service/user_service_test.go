package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/storage"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

type fakeUserStore struct {
	users   map[int]*models.User
	nextID  int
	deleted []int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]*models.User{}, nextID: 1}
}

func (s *fakeUserStore) GetByID(_ context.Context, id int) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *fakeUserStore) List(context.Context) ([]models.User, error) { return nil, nil }

func (s *fakeUserStore) ListByRole(context.Context, string) ([]models.User, error) {
	return nil, nil
}

func (s *fakeUserStore) Create(_ context.Context, u *models.User) error {
	u.ID = s.nextID
	s.nextID++
	clone := *u
	s.users[u.ID] = &clone
	return nil
}

func (s *fakeUserStore) Update(_ context.Context, u *models.User) error {
	if _, ok := s.users[u.ID]; !ok {
		return utils.ErrNotFound
	}
	clone := *u
	s.users[u.ID] = &clone
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id int) error {
	if _, ok := s.users[id]; !ok {
		return utils.ErrNotFound
	}
	delete(s.users, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type fakeRequestCreator struct {
	created   []*models.RequestAdminDaerah
	createErr error
}

func (r *fakeRequestCreator) Create(_ context.Context, req *models.RequestAdminDaerah) error {
	if r.createErr != nil {
		return r.createErr
	}
	req.ID = len(r.created) + 1
	req.Status = models.StatusPending
	r.created = append(r.created, req)
	return nil
}

type fakeMediaStore struct {
	uploads   []string
	deletes   []string
	uploadErr map[string]error
	counter   int
}

func (m *fakeMediaStore) Upload(_ context.Context, subfolder string, _ storage.File) (string, error) {
	if err := m.uploadErr[subfolder]; err != nil {
		return "", err
	}
	m.counter++
	url := fmt.Sprintf("https://store.example/%s/%d", subfolder, m.counter)
	m.uploads = append(m.uploads, url)
	return url, nil
}

func (m *fakeMediaStore) Delete(_ context.Context, url string) error {
	m.deletes = append(m.deletes, url)
	return nil
}

func adminInput() *RegisterAdminInput {
	daerahID := 3
	return &RegisterAdminInput{
		Username:   "ani",
		Email:      "ani@example.com",
		Password:   "rahasia123",
		DaerahID:   &daerahID,
		KTP:        &storage.File{Name: "ktp.jpg", ContentType: "image/jpeg", Data: []byte("ktp")},
		Portofolio: &storage.File{Name: "porto.pdf", ContentType: "application/pdf", Data: []byte("porto")},
	}
}

func TestRegisterAdminDaerah(t *testing.T) {
	users := newFakeUserStore()
	requests := &fakeRequestCreator{}
	docs := &fakeMediaStore{}
	svc := NewUserService(users, requests, docs)

	a := assert.New(t)
	user, request, err := svc.RegisterAdminDaerah(context.Background(), adminInput())
	a.NoError(err)

	a.Equal(models.RoleAdminDaerah, user.Role)
	a.NotNil(user.KTP)
	a.NotNil(user.Portofolio)
	a.Equal(user.ID, request.UserID)
	a.Equal(models.StatusPending, request.Status)
	a.Len(docs.uploads, 2)
	a.Empty(docs.deletes)
}

func TestRegisterAdminDaerahRequiresTarget(t *testing.T) {
	users := newFakeUserStore()
	docs := &fakeMediaStore{}
	svc := NewUserService(users, &fakeRequestCreator{}, docs)

	input := adminInput()
	input.DaerahID = nil
	input.NamaDaerah = nil

	_, _, err := svc.RegisterAdminDaerah(context.Background(), input)

	a := assert.New(t)
	a.True(errors.Is(err, utils.ErrMissingDaerah))
	a.Empty(users.users)
	a.Empty(docs.uploads)
}

// When the request insert fails, the user row and the uploaded documents
// must not linger.
func TestRegisterAdminDaerahCompensatesOnRequestFailure(t *testing.T) {
	users := newFakeUserStore()
	requests := &fakeRequestCreator{createErr: errors.New("insert failed")}
	docs := &fakeMediaStore{}
	svc := NewUserService(users, requests, docs)

	_, _, err := svc.RegisterAdminDaerah(context.Background(), adminInput())

	a := assert.New(t)
	a.Error(err)
	a.Empty(users.users)
	a.ElementsMatch(docs.uploads, docs.deletes)
}

func TestRegisterAdminDaerahCompensatesOnPortofolioFailure(t *testing.T) {
	users := newFakeUserStore()
	docs := &fakeMediaStore{uploadErr: map[string]error{"portofolio": errors.New("upload failed")}}
	svc := NewUserService(users, &fakeRequestCreator{}, docs)

	_, _, err := svc.RegisterAdminDaerah(context.Background(), adminInput())

	a := assert.New(t)
	a.Error(err)
	a.Empty(users.users)
	a.Len(docs.uploads, 1)
	a.Equal(docs.uploads, docs.deletes)
}

func TestUpdateRoleOnlyForSuperAdmin(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, &fakeRequestCreator{}, &fakeMediaStore{})

	seed := &models.User{Username: "budi", Email: "budi@example.com", Role: models.RoleUser}
	_ = users.Create(context.Background(), seed)

	a := assert.New(t)

	// A non-super-admin actor cannot change roles.
	updated, err := svc.Update(context.Background(), seed.ID,
		&UpdateUserInput{Role: models.RoleSuperAdmin}, models.RoleAdminDaerah)
	a.NoError(err)
	a.Equal(models.RoleUser, updated.Role)

	// A super admin can, but only to a known role.
	_, err = svc.Update(context.Background(), seed.ID,
		&UpdateUserInput{Role: "OWNER"}, models.RoleSuperAdmin)
	a.True(errors.Is(err, utils.ErrInvalidRole))

	updated, err = svc.Update(context.Background(), seed.ID,
		&UpdateUserInput{Role: models.RoleAdminDaerah}, models.RoleSuperAdmin)
	a.NoError(err)
	a.Equal(models.RoleAdminDaerah, updated.Role)
}

func TestUpdateRehashesPassword(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users, &fakeRequestCreator{}, &fakeMediaStore{})

	seed := &models.User{Username: "budi", Email: "budi@example.com", Password: "old-hash"}
	_ = users.Create(context.Background(), seed)

	updated, err := svc.Update(context.Background(), seed.ID,
		&UpdateUserInput{Password: "baru123"}, models.RoleUser)

	a := assert.New(t)
	a.NoError(err)
	a.NotEqual("baru123", updated.Password)
	a.NoError(bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("baru123")))
}

func TestUpdateReplacesDocuments(t *testing.T) {
	users := newFakeUserStore()
	docs := &fakeMediaStore{}
	svc := NewUserService(users, &fakeRequestCreator{}, docs)

	oldKTP := "https://store.example/ktp/old"
	seed := &models.User{Username: "ani", Email: "ani@example.com", KTP: &oldKTP}
	_ = users.Create(context.Background(), seed)

	updated, err := svc.Update(context.Background(), seed.ID, &UpdateUserInput{
		KTP: &storage.File{Name: "ktp2.jpg", ContentType: "image/jpeg", Data: []byte("new")},
	}, models.RoleUser)

	a := assert.New(t)
	a.NoError(err)
	a.NotEqual(oldKTP, *updated.KTP)
	a.Equal([]string{oldKTP}, docs.deletes)
}

func TestDeleteRemovesDocuments(t *testing.T) {
	users := newFakeUserStore()
	docs := &fakeMediaStore{}
	svc := NewUserService(users, &fakeRequestCreator{}, docs)

	ktp := "https://store.example/ktp/1"
	porto := "https://store.example/portofolio/1"
	seed := &models.User{Username: "ani", Email: "ani@example.com", KTP: &ktp, Portofolio: &porto}
	_ = users.Create(context.Background(), seed)

	a := assert.New(t)
	a.NoError(svc.Delete(context.Background(), seed.ID))
	a.Equal([]int{seed.ID}, users.deleted)
	a.ElementsMatch([]string{ktp, porto}, docs.deletes)
}

func TestDeleteUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), &fakeRequestCreator{}, &fakeMediaStore{})
	err := svc.Delete(context.Background(), 99)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

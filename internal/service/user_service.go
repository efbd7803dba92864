package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/storage"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// UserStore is the persistence dependency of UserService.
type UserStore interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int) error
}

// RequestCreator creates promotion requests alongside admin registration.
type RequestCreator interface {
	Create(ctx context.Context, req *models.RequestAdminDaerah) error
}

// UserService handles account management and admin-daerah registration.
// Documents (KTP, portfolio) live in the document store.
type UserService struct {
	users    UserStore
	requests RequestCreator
	docs     MediaStore
}

// NewUserService constructs a UserService.
func NewUserService(users UserStore, requests RequestCreator, docs MediaStore) *UserService {
	return &UserService{users: users, requests: requests, docs: docs}
}

// RegisterAdminInput is the payload for admin-daerah registration. KTP and
// Portofolio carry uploaded documents; either DaerahID or NamaDaerah must be
// set so the promotion request has a target region.
type RegisterAdminInput struct {
	Username   string
	Email      string
	Password   string
	Alamat     *string
	DaerahID   *int
	NamaDaerah *string
	KTP        *storage.File
	Portofolio *storage.File
}

// RegisterAdminDaerah creates a user with the ADMIN_DAERAH role and a
// PENDING promotion request. The role grants no privilege until the request
// is accepted. If the request insert fails after the user was created, the
// user row and any uploaded documents are rolled back best-effort.
func (s *UserService) RegisterAdminDaerah(ctx context.Context, input *RegisterAdminInput) (*models.User, *models.RequestAdminDaerah, error) {
	if input.DaerahID == nil && (input.NamaDaerah == nil || *input.NamaDaerah == "") {
		return nil, nil, utils.ErrMissingDaerah
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Role:     models.RoleAdminDaerah,
		Alamat:   input.Alamat,
	}

	if input.KTP != nil {
		url, err := s.docs.Upload(ctx, "ktp", *input.KTP)
		if err != nil {
			return nil, nil, err
		}
		user.KTP = &url
	}
	if input.Portofolio != nil {
		url, err := s.docs.Upload(ctx, "portofolio", *input.Portofolio)
		if err != nil {
			deleteMedia(ctx, s.docs, user.KTP)
			return nil, nil, err
		}
		user.Portofolio = &url
	}

	if err := s.users.Create(ctx, user); err != nil {
		deleteMedia(ctx, s.docs, user.KTP)
		deleteMedia(ctx, s.docs, user.Portofolio)
		return nil, nil, err
	}

	request := &models.RequestAdminDaerah{
		UserID:     user.ID,
		DaerahID:   input.DaerahID,
		NamaDaerah: input.NamaDaerah,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		// Compensate: the half-registered admin must not linger.
		if delErr := s.users.Delete(ctx, user.ID); delErr != nil {
			err = delErr
		}
		deleteMedia(ctx, s.docs, user.KTP)
		deleteMedia(ctx, s.docs, user.Portofolio)
		return nil, nil, err
	}

	return user, request, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// ListRegular returns only plain USER accounts.
func (s *UserService) ListRegular(ctx context.Context) ([]models.User, error) {
	return s.users.ListByRole(ctx, models.RoleUser)
}

// GetByID returns a user by id.
func (s *UserService) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateUserInput is the payload for partial profile updates. Empty string
// fields are left unchanged; Role is honored only for SUPER_ADMIN actors.
type UpdateUserInput struct {
	Username   string
	Email      string
	Alamat     *string
	Role       string
	Password   string
	KTP        *storage.File
	Portofolio *storage.File
}

// Update applies a partial update. A supplied password is re-hashed; newly
// supplied documents replace the previous ones, which are deleted
// best-effort after the row update succeeds.
func (s *UserService) Update(ctx context.Context, id int, input *UpdateUserInput, actorRole string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Alamat != nil {
		user.Alamat = input.Alamat
	}
	if input.Role != "" && actorRole == models.RoleSuperAdmin {
		if !models.ValidRole(input.Role) {
			return nil, utils.ErrInvalidRole
		}
		user.Role = input.Role
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	oldKTP, oldPortofolio := user.KTP, user.Portofolio
	if input.KTP != nil {
		url, err := s.docs.Upload(ctx, "ktp", *input.KTP)
		if err != nil {
			return nil, err
		}
		user.KTP = &url
	}
	if input.Portofolio != nil {
		url, err := s.docs.Upload(ctx, "portofolio", *input.Portofolio)
		if err != nil {
			return nil, err
		}
		user.Portofolio = &url
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if input.KTP != nil {
		deleteMedia(ctx, s.docs, oldKTP)
	}
	if input.Portofolio != nil {
		deleteMedia(ctx, s.docs, oldPortofolio)
	}
	return user, nil
}

// Delete removes a user. Dependent request and rating rows go first (the
// store handles that transactionally), then any stored documents are
// deleted best-effort.
func (s *UserService) Delete(ctx context.Context, id int) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	deleteMedia(ctx, s.docs, user.KTP)
	deleteMedia(ctx, s.docs, user.Portofolio)
	return nil
}

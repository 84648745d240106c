package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
	"github.com/dguedes/marmitaria-api/pkg/apperror"
	"github.com/dguedes/marmitaria-api/pkg/utils"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByCode(ctx context.Context, code string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Code == code {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(ctx context.Context, activeOnly bool) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entity.User
	for _, user := range r.users {
		if activeOnly && !user.Active {
			continue
		}
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	user.Active = false
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwtManager), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, code string, role enum.UserRole, password string, active bool) *entity.User {
	t.Helper()
	user := &entity.User{Code: code, Name: "Test " + code, Role: role, Active: active}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("bcrypt: %v", err)
		}
		hashed := string(hash)
		user.Password = &hashed
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return user
}

func TestLoginAttendantIgnoresPassword(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedUser(t, repo, "maria", enum.RoleAttendant, "", true)

	tokens, err := svc.Login(context.Background(), "maria", "whatever")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("login did not issue tokens")
	}
	if tokens.User.Code != "maria" {
		t.Errorf("logged in as %q", tokens.User.Code)
	}
}

func TestLoginAdminRequiresPassword(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedUser(t, repo, "admin", enum.RoleAdmin, "admin123", true)

	if _, err := svc.Login(context.Background(), "admin", "wrong"); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}

	tokens, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokens.User.Role != enum.RoleAdmin {
		t.Errorf("role = %s", tokens.User.Role)
	}
}

func TestLoginRejectsUnknownAndInactive(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedUser(t, repo, "joao", enum.RoleAttendant, "", false)

	if _, err := svc.Login(context.Background(), "ghost", ""); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("unknown code: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), "joao", ""); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("inactive user: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshToken(t *testing.T) {
	svc, repo := newAuthFixture(t)
	user := seedUser(t, repo, "maria", enum.RoleAttendant, "", true)

	tokens, err := svc.Login(context.Background(), "maria", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.User.ID != user.ID {
		t.Errorf("refreshed token for %s, want %s", refreshed.User.ID, user.ID)
	}

	if _, err := svc.RefreshToken(context.Background(), "not-a-token"); !errors.Is(err, apperror.ErrInvalidToken) {
		t.Errorf("garbage token: err = %v, want ErrInvalidToken", err)
	}

	// deactivated users cannot refresh
	if err := repo.Deactivate(context.Background(), user.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if _, err := svc.RefreshToken(context.Background(), tokens.RefreshToken); err == nil {
		t.Error("deactivated user refreshed a token")
	}
}

func TestCreateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.CreateUser(context.Background(), &CreateUserInput{Code: "maria", Name: "Maria"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Role != enum.RoleAttendant {
		t.Errorf("default role = %s, want attendant", user.Role)
	}

	// duplicate codes are rejected
	if _, err := svc.CreateUser(context.Background(), &CreateUserInput{Code: "maria", Name: "Other"}); err == nil {
		t.Error("duplicate code accepted")
	}

	// admins need a password
	if _, err := svc.CreateUser(context.Background(), &CreateUserInput{Code: "boss", Name: "Boss", Role: "admin"}); err == nil {
		t.Error("admin without password accepted")
	}

	admin, err := svc.CreateUser(context.Background(), &CreateUserInput{Code: "boss", Name: "Boss", Role: "admin", Password: "s3cret"})
	if err != nil {
		t.Fatalf("CreateUser admin: %v", err)
	}
	if admin.Password == nil {
		t.Fatal("admin password not stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*admin.Password), []byte("s3cret")); err != nil {
		t.Error("stored password hash does not match")
	}
}

func TestDeactivateUserKeepsRow(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.CreateUser(context.Background(), &CreateUserInput{Code: "maria", Name: "Maria"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := svc.DeactivateUser(context.Background(), user.ID); err != nil {
		t.Fatalf("DeactivateUser: %v", err)
	}

	stored, err := svc.GetUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if stored.Active {
		t.Error("user still active after deactivation")
	}
}

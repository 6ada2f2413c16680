package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/persistence"
)

// In-memory stand-ins for the persistence ports. They mimic the error
// contracts of the real repositories closely enough for use case tests.

type stubUserRepo struct {
	byID      map[uint64]*entity.User
	nextID    uint64
	createErr error
	getErr    error
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: map[uint64]*entity.User{}}
}

func (r *stubUserRepo) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	user, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, user := range r.byID {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.byID {
		if existing.Username == user.Username {
			return errs.ErrDuplicateUsername
		}
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.byID[user.ID] = &copied
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[user.ID]; !ok {
		return errs.ErrUserNotFound
	}
	copied := *user
	r.byID[user.ID] = &copied
	return nil
}

type stubSessionRepo struct {
	byToken   map[string]*entity.Session
	createErr error
	deleteErr error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{byToken: map[string]*entity.Session{}}
}

func (r *stubSessionRepo) Create(_ context.Context, session *entity.Session) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *session
	r.byToken[session.Token] = &copied
	return nil
}

func (r *stubSessionRepo) GetByToken(_ context.Context, token string) (*entity.Session, error) {
	session, ok := r.byToken[token]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *stubSessionRepo) Delete(_ context.Context, token string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.byToken, token)
	return nil
}

func (r *stubSessionRepo) DeleteByUser(_ context.Context, userID uint64, exceptToken string) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	var removed int64
	for token, session := range r.byToken {
		if session.UserID == userID && token != exceptToken {
			delete(r.byToken, token)
			removed++
		}
	}
	return removed, nil
}

func (r *stubSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var removed int64
	for token, session := range r.byToken {
		if session.ExpiredAt(now) {
			delete(r.byToken, token)
			removed++
		}
	}
	return removed, nil
}

// stubUnitOfWork runs the callback without a real transaction and hands out
// the same stub repositories
type stubUnitOfWork struct {
	users    *stubUserRepo
	sessions *stubSessionRepo
	execErr  error
}

func (u *stubUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if u.execErr != nil {
		return u.execErr
	}
	return fn(ctx)
}

func (u *stubUnitOfWork) Users(context.Context) persistence.UserRepository {
	return u.users
}

func (u *stubUnitOfWork) Sessions(context.Context) persistence.SessionRepository {
	return u.sessions
}

type stubHasher struct {
	hashErr error
}

func (h *stubHasher) Hash(passcode string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + passcode, nil
}

func (h *stubHasher) Compare(hash, passcode string) bool {
	return hash == "hashed:"+passcode
}

type stubTokenGenerator struct {
	count int
	err   error
}

func (g *stubTokenGenerator) Generate() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.count++
	return "token-" + strconv.Itoa(g.count), nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

func (p *fixedTimeProvider) Since(t time.Time) coreport.Duration {
	return coreport.Duration(p.now.Sub(t))
}

type nopLogger struct{}

func (nopLogger) SetLevel(coreport.LogLevel) {}

func (nopLogger) Debug(string, map[string]any) {}

func (nopLogger) Info(string, map[string]any) {}

func (nopLogger) Warn(string, map[string]any) {}

func (nopLogger) Error(string, map[string]any) {}

func (nopLogger) Flush() error { return nil }

// testAuth wires an AuthUseCase over fresh stubs
type testAuth struct {
	users    *stubUserRepo
	sessions *stubSessionRepo
	uow      *stubUnitOfWork
	hasher   *stubHasher
	tokens   *stubTokenGenerator
	clock    *fixedTimeProvider
	uc       *AuthUseCase
}

func newTestAuth() *testAuth {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	uow := &stubUnitOfWork{users: users, sessions: sessions}
	hasher := &stubHasher{}
	tokens := &stubTokenGenerator{}
	clock := &fixedTimeProvider{now: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)}

	uc := NewAuthUseCase(users, sessions, uow, hasher, tokens, 24*coreport.Hour, clock, nopLogger{})

	return &testAuth{
		users:    users,
		sessions: sessions,
		uow:      uow,
		hasher:   hasher,
		tokens:   tokens,
		clock:    clock,
		uc:       uc.(*AuthUseCase),
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"draftdeck/internal/ai"
	"draftdeck/internal/database"
	"draftdeck/internal/generate"
	"draftdeck/internal/middleware"
	"draftdeck/internal/models"
	"draftdeck/internal/session"
	"draftdeck/internal/store"
)

// mockAIProvider implements ai.Provider with scripted replies, consumed
// in order. When the script runs out it answers with an empty JSON
// object, which every parser in the app tolerates.
type mockAIProvider struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
}

func (m *mockAIProvider) Name() string { return "test" }

func (m *mockAIProvider) Generate(_ context.Context, _, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	if len(m.responses) == 0 {
		return "{}", nil
	}
	r := m.responses[0]
	m.responses = m.responses[1:]
	return r, nil
}

func (m *mockAIProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockAIProvider) script(responses ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = responses
	m.err = nil
}

func (m *mockAIProvider) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "draftdeck")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "draftdeck")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "session:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB          *sql.DB
	Valkey      *redis.Client
	Sessions    *session.Store
	Users       *store.UserStore
	Onboardings *store.OnboardingStore
	Uploads     *store.UploadStore
	Profiles    *store.ProfileStore
	Ledger      *store.LedgerStore
	Contents    *store.ContentStore
	Guidelines  *store.GuidelineStore
	AI          *mockAIProvider
	Registry    *ai.Registry

	Auth       *Auth
	Onboarding *Onboarding
	UploadsH   *Uploads
	Style      *Style
	Credits    *Credits
	Content    *Content
	Calendar   *Calendar
	Pillars    *Pillars
}

// newTestEnv creates a complete test environment with all handler
// dependencies, AI scripted through a mock provider and no S3 or image
// providers configured.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk, false)
	users := store.NewUserStore(db)
	onboardings := store.NewOnboardingStore(db)
	uploads := store.NewUploadStore(db)
	profiles := store.NewProfileStore(db)
	ledger := store.NewLedgerStore(db)
	contents := store.NewContentStore(db)
	guidelines := store.NewGuidelineStore(db)

	mock := &mockAIProvider{}
	registry := ai.NewRegistry("test", map[string]ai.ProviderConfig{})
	registry.Register("test", mock)

	generator := generate.NewService(registry)

	return &testEnv{
		DB:          db,
		Valkey:      vk,
		Sessions:    sessions,
		Users:       users,
		Onboardings: onboardings,
		Uploads:     uploads,
		Profiles:    profiles,
		Ledger:      ledger,
		Contents:    contents,
		Guidelines:  guidelines,
		AI:          mock,
		Registry:    registry,

		Auth:       NewAuth(users, sessions),
		Onboarding: NewOnboarding(users, onboardings, uploads, profiles, registry, sessions),
		UploadsH:   NewUploads(uploads, onboardings, profiles, registry, nil),
		Style:      NewStyle(uploads, onboardings, profiles, registry),
		Credits:    NewCredits(ledger),
		Content:    NewContent(users, contents, profiles, generator, nil),
		Calendar:   NewCalendar(users, contents, profiles, guidelines, generator),
		Pillars:    NewPillars(guidelines),
	}
}

// newTestUser creates a user with a unique email and registers cleanup.
func newTestUser(t *testing.T, env *testEnv) *models.User {
	t.Helper()

	email := fmt.Sprintf("h-%s@test.local", uuid.New().String()[:8])
	user, err := env.Users.Create(email, "password123", "Handler Test")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() { env.Users.Delete(user.ID) })
	return user
}

// sessionFor builds session data matching a stored user.
func sessionFor(user *models.User) *session.Data {
	return &session.Data{
		UserID:         user.ID,
		Email:          user.Email,
		DisplayName:    user.DisplayName,
		OnboardingDone: user.OnboardingCompleted,
	}
}

// withSession attaches session data to a request context.
func withSession(r *http.Request, data *session.Data) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, data))
}

// withURLParamAndSession attaches both a chi URL parameter and session data.
func withURLParamAndSession(r *http.Request, key, value string, data *session.Data) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.SessionKey, data)
	return r.WithContext(ctx)
}

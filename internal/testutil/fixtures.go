package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/brightharbor/schoolhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given password already
// hashed. Returns the created user with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, password, role string, active bool) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdmin creates an active admin account.
func (f *Fixtures) CreateAdmin(ctx context.Context, email, password string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, "Test Admin", email, password, models.RoleAdmin, true)
}

// CreateBanner creates a test banner.
func (f *Fixtures) CreateBanner(ctx context.Context, heading string, order int, active bool) models.Banner {
	f.t.Helper()

	now := time.Now().UTC()
	banner := models.Banner{
		ID:        primitive.NewObjectID(),
		Image:     "/uploads/test-banner.jpg",
		Heading:   heading,
		Order:     order,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("banners").InsertOne(ctx, banner); err != nil {
		f.t.Fatalf("failed to create test banner: %v", err)
	}
	return banner
}

// CreateEvent creates a test event dated the given offset from now.
func (f *Fixtures) CreateEvent(ctx context.Context, title string, dayOffset int, active bool) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	event := models.Event{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "Test event description",
		Date:        now.AddDate(0, 0, dayOffset),
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, event); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

// CreateTeamMember creates a test team member.
func (f *Fixtures) CreateTeamMember(ctx context.Context, name string, order int, active bool) models.TeamMember {
	f.t.Helper()

	now := time.Now().UTC()
	member := models.TeamMember{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Photo:       "/uploads/test-photo.jpg",
		Designation: "Teacher",
		Order:       order,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("team_members").InsertOne(ctx, member); err != nil {
		f.t.Fatalf("failed to create test team member: %v", err)
	}
	return member
}

// CreateContactSubmission creates a test contact-form submission.
func (f *Fixtures) CreateContactSubmission(ctx context.Context, name string, read bool) models.ContactSubmission {
	f.t.Helper()

	sub := models.ContactSubmission{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     "visitor@example.com",
		Subject:   "Test subject",
		Message:   "Test message",
		IsRead:    read,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("contact_submissions").InsertOne(ctx, sub); err != nil {
		f.t.Fatalf("failed to create test contact submission: %v", err)
	}
	return sub
}

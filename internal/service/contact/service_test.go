package contact

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/mailer"
	contactrepo "github.com/khatkhazana-hub/backend/internal/repository/contact"
)

type stubRepo struct {
	lastInsert contactrepo.CreateContactInput
	inserted   int
}

func (s *stubRepo) Insert(_ context.Context, in contactrepo.CreateContactInput) (*domain.Contact, error) {
	s.lastInsert = in
	s.inserted++
	return &domain.Contact{
		ID:        "ct1",
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *stubRepo) List(_ context.Context, _ contactrepo.ListFilter) ([]domain.Contact, int, error) {
	return nil, 0, nil
}

func (s *stubRepo) GetByID(context.Context, string) (*domain.Contact, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Delete(context.Context, string) error { return nil }

type stubMailer struct {
	sent []mailer.Message
	err  error
}

func (m *stubMailer) Send(_ context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestCreateRequiresNameAndEmail(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, &stubMailer{}, "owner@example.com", testLogger())

	_, err := svc.Create(context.Background(), CreateInput{Name: "Amira"})
	var invalid *domain.ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.inserted != 0 {
		t.Fatalf("insert should not run on invalid input")
	}
}

func TestCreateNotifiesOwner(t *testing.T) {
	repo := &stubRepo{}
	mail := &stubMailer{}
	svc := New(repo, mail, "owner@example.com", testLogger())

	c, err := svc.Create(context.Background(), CreateInput{
		Name:    "  Amira  ",
		Email:   "amira@example.com",
		Message: "Do you ship to Lahore?",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Name != "Amira" {
		t.Fatalf("name not trimmed: %q", c.Name)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(mail.sent))
	}
	msg := mail.sent[0]
	if len(msg.To) != 1 || msg.To[0] != "owner@example.com" {
		t.Fatalf("notification to = %v", msg.To)
	}
	if !strings.Contains(msg.HTML, "Do you ship to Lahore?") {
		t.Fatalf("notification body missing message: %s", msg.HTML)
	}
}

func TestCreateSucceedsWhenMailFails(t *testing.T) {
	repo := &stubRepo{}
	mail := &stubMailer{err: errors.New("relay down")}
	svc := New(repo, mail, "owner@example.com", testLogger())

	if _, err := svc.Create(context.Background(), CreateInput{Name: "A", Email: "a@b.c"}); err != nil {
		t.Fatalf("Create should not surface mail errors: %v", err)
	}
	if repo.inserted != 1 {
		t.Fatalf("submission not persisted")
	}
}

func TestCreateSkipsMailWithoutNotifyAddress(t *testing.T) {
	mail := &stubMailer{}
	svc := New(&stubRepo{}, mail, "", testLogger())

	if _, err := svc.Create(context.Background(), CreateInput{Name: "A", Email: "a@b.c"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(mail.sent) != 0 {
		t.Fatalf("no notification expected, got %d", len(mail.sent))
	}
}

func TestListClampsPagination(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, &stubMailer{}, "", testLogger())

	out, err := svc.List(context.Background(), ListInput{Limit: -5, Offset: -1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Contacts == nil {
		t.Fatalf("contacts must be non-nil for JSON encoding")
	}
}

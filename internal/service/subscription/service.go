package subscription

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/khatkhazana-hub/backend/internal/domain"
	subscriptionrepo "github.com/khatkhazana-hub/backend/internal/repository/subscription"
	"github.com/khatkhazana-hub/backend/internal/turnstile"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrCaptchaUnavailable wraps transport failures reaching the captcha
// verifier. Handlers map it to a 502.
var ErrCaptchaUnavailable = errors.New("captcha verification unavailable")

type repo interface {
	Insert(ctx context.Context, email string) (*domain.Subscription, error)
	FindByEmail(ctx context.Context, email string) (*domain.Subscription, error)
	List(ctx context.Context) ([]domain.Subscription, error)
	Delete(ctx context.Context, id string) error
}

// CaptchaVerifier abstracts turnstile.Verifier for tests.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

type Service struct {
	repo    repo
	captcha CaptchaVerifier
}

// New builds the subscription service. captcha may be nil, in which case
// tokens are not required or checked.
func New(r subscriptionrepo.Repository, captcha CaptchaVerifier) *Service {
	return &Service{repo: r, captcha: captcha}
}

type CreateInput struct {
	Email        string
	CaptchaToken string
	RemoteIP     string
}

// CreateOutput reports whether a new subscription row was written.
// Created is false when the email was already subscribed.
type CreateOutput struct {
	Subscription *domain.Subscription
	Created      bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*CreateOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !emailPattern.MatchString(email) {
		return nil, domain.Invalid("a valid email is required")
	}

	if s.captcha != nil {
		if strings.TrimSpace(in.CaptchaToken) == "" {
			return nil, domain.Invalid("captcha token is required")
		}
		if err := s.captcha.Verify(ctx, in.CaptchaToken, in.RemoteIP); err != nil {
			if errors.Is(err, turnstile.ErrVerificationFailed) {
				return nil, domain.Invalid("captcha verification failed")
			}
			return nil, errors.Join(ErrCaptchaUnavailable, err)
		}
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return &CreateOutput{Subscription: existing, Created: false}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	sub, err := s.repo.Insert(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Raced with a concurrent subscribe; treat as already subscribed.
			if existing, ferr := s.repo.FindByEmail(ctx, email); ferr == nil {
				return &CreateOutput{Subscription: existing, Created: false}, nil
			}
		}
		return nil, err
	}
	return &CreateOutput{Subscription: sub, Created: true}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Subscription, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []domain.Subscription{}
	}
	return subs, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

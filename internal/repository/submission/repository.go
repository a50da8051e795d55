package submission

import (
	"context"

	"github.com/khatkhazana-hub/backend/internal/domain"
)

type CreateSubmissionInput struct {
	FullName              string
	Email                 string
	Phone                 string
	Location              string
	HasReadGuidelines     bool
	AgreedTermsSubmission bool
	UploadType            string
	Letter                domain.LetterSection
	Photo                 domain.PhotoSection
	Before2000            string
}

// UpdateSubmissionInput patches only the non-nil fields.
type UpdateSubmissionInput struct {
	Phone          *string
	Location       *string
	Letter         *domain.LetterSection
	Photo          *domain.PhotoSection
	Notes          *string
	LetterStatus   *string
	PhotoStatus    *string
	FeaturedLetter *bool
	FeaturedPhoto  *bool
}

type Repository interface {
	Insert(ctx context.Context, in CreateSubmissionInput) (*domain.Submission, error)
	// List returns newest-first submissions, capped at limit.
	List(ctx context.Context, limit int) ([]domain.Submission, error)
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	// SetStatus moves the overall review status.
	SetStatus(ctx context.Context, id, status string) (*domain.Submission, error)
	Update(ctx context.Context, id string, in UpdateSubmissionInput) (*domain.Submission, error)
	Delete(ctx context.Context, id string) error
}

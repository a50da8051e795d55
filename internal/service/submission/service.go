package submission

import (
	"context"
	"strings"

	"github.com/khatkhazana-hub/backend/internal/domain"
	submissionrepo "github.com/khatkhazana-hub/backend/internal/repository/submission"
)

const listLimit = 50

type repo interface {
	Insert(ctx context.Context, in submissionrepo.CreateSubmissionInput) (*domain.Submission, error)
	List(ctx context.Context, limit int) ([]domain.Submission, error)
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	SetStatus(ctx context.Context, id, status string) (*domain.Submission, error)
	Update(ctx context.Context, id string, in submissionrepo.UpdateSubmissionInput) (*domain.Submission, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo repo
}

func New(r submissionrepo.Repository) *Service {
	return &Service{repo: r}
}

type CreateInput struct {
	FullName              string               `json:"fullName"`
	Email                 string               `json:"email"`
	Phone                 string               `json:"phone"`
	Location              string               `json:"location"`
	HasReadGuidelines     bool                 `json:"hasReadGuidelines"`
	AgreedTermsSubmission bool                 `json:"agreedTermsSubmission"`
	UploadType            string               `json:"uploadType"`
	Letter                domain.LetterSection `json:"letter"`
	Photo                 domain.PhotoSection  `json:"photo"`
	Before2000            string               `json:"before2000"`
}

type UpdateInput struct {
	Phone          *string               `json:"phone"`
	Location       *string               `json:"location"`
	Letter         *domain.LetterSection `json:"letter"`
	Photo          *domain.PhotoSection  `json:"photo"`
	Notes          *string               `json:"notes"`
	LetterStatus   *string               `json:"letterStatus"`
	PhotoStatus    *string               `json:"photoStatus"`
	FeaturedLetter *bool                 `json:"featuredLetter"`
	FeaturedPhoto  *bool                 `json:"featuredPhoto"`
}

func validUploadType(t string) bool {
	switch t {
	case domain.UploadTypeLetter, domain.UploadTypePhotographs, domain.UploadTypeBoth:
		return true
	}
	return false
}

func validReviewStatus(s string) bool {
	switch s {
	case domain.SubmissionPending, domain.SubmissionApproved, domain.SubmissionRejected:
		return true
	}
	return false
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Submission, error) {
	if strings.TrimSpace(in.FullName) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.Invalid("fullName and email are required.")
	}
	if strings.TrimSpace(in.UploadType) == "" {
		return nil, domain.Invalid("uploadType is required.")
	}
	if !validUploadType(in.UploadType) {
		return nil, domain.Invalid("uploadType must be Letter, Photographs or Both.")
	}
	if !in.HasReadGuidelines {
		return nil, domain.Invalid("Please confirm you've read the submission guidelines.")
	}
	if !in.AgreedTermsSubmission {
		return nil, domain.Invalid("You must agree to the terms of submission.")
	}

	letter := in.Letter
	if letter.NarrativeFormat == "" {
		letter.NarrativeFormat = "text"
	}
	photo := in.Photo
	if photo.NarrativeFormat == "" {
		photo.NarrativeFormat = "text"
	}
	before := in.Before2000
	if before != "Yes" {
		before = "No"
	}

	return s.repo.Insert(ctx, submissionrepo.CreateSubmissionInput{
		FullName:              strings.TrimSpace(in.FullName),
		Email:                 strings.TrimSpace(in.Email),
		Phone:                 strings.TrimSpace(in.Phone),
		Location:              strings.TrimSpace(in.Location),
		HasReadGuidelines:     in.HasReadGuidelines,
		AgreedTermsSubmission: in.AgreedTermsSubmission,
		UploadType:            in.UploadType,
		Letter:                letter,
		Photo:                 photo,
		Before2000:            before,
	})
}

// List returns the newest submissions for the review queue.
func (s *Service) List(ctx context.Context) ([]domain.Submission, error) {
	subs, err := s.repo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []domain.Submission{}
	}
	return subs, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Submission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id string) (*domain.Submission, error) {
	return s.repo.SetStatus(ctx, id, domain.SubmissionApproved)
}

func (s *Service) Reject(ctx context.Context, id string) (*domain.Submission, error) {
	return s.repo.SetStatus(ctx, id, domain.SubmissionRejected)
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Submission, error) {
	if in.LetterStatus != nil && !validReviewStatus(*in.LetterStatus) {
		return nil, domain.Invalid("letterStatus must be pending, approved or rejected.")
	}
	if in.PhotoStatus != nil && !validReviewStatus(*in.PhotoStatus) {
		return nil, domain.Invalid("photoStatus must be pending, approved or rejected.")
	}
	return s.repo.Update(ctx, id, submissionrepo.UpdateSubmissionInput{
		Phone:          in.Phone,
		Location:       in.Location,
		Letter:         in.Letter,
		Photo:          in.Photo,
		Notes:          in.Notes,
		LetterStatus:   in.LetterStatus,
		PhotoStatus:    in.PhotoStatus,
		FeaturedLetter: in.FeaturedLetter,
		FeaturedPhoto:  in.FeaturedPhoto,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

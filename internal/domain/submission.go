package domain

import "time"

// Submission review statuses.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// Archive submission upload types.
const (
	UploadTypeLetter      = "Letter"
	UploadTypePhotographs = "Photographs"
	UploadTypeBoth        = "Both"
)

// FileMeta describes an already-uploaded file by reference. The API
// stores metadata only; the bytes live in object storage and the client
// supplies the URL.
type FileMeta struct {
	OriginalName string `json:"originalName,omitempty"`
	MimeType     string `json:"mimeType,omitempty"`
	Size         int64  `json:"size,omitempty"`
	Path         string `json:"path,omitempty"`
	Filename     string `json:"filename,omitempty"`
}

// LetterSection carries the letter half of an archive submission.
type LetterSection struct {
	Title             string     `json:"title,omitempty"`
	Category          string     `json:"category,omitempty"`
	Language          string     `json:"language,omitempty"`
	Decade            string     `json:"decade,omitempty"`
	Images            []FileMeta `json:"images,omitempty"`
	NarrativeFormat   string     `json:"narrativeFormat,omitempty"`
	Narrative         string     `json:"narrative,omitempty"`
	Audio             *FileMeta  `json:"audio,omitempty"`
	NarrativeOptional string     `json:"narrativeOptional,omitempty"`
}

// PhotoSection carries the photograph half of an archive submission.
type PhotoSection struct {
	Caption           string     `json:"caption,omitempty"`
	Place             string     `json:"place,omitempty"`
	Images            []FileMeta `json:"images,omitempty"`
	NarrativeFormat   string     `json:"narrativeFormat,omitempty"`
	Narrative         string     `json:"narrative,omitempty"`
	Audio             *FileMeta  `json:"audio,omitempty"`
	NarrativeOptional string     `json:"narrativeOptional,omitempty"`
}

// Submission is a visitor-submitted archive piece awaiting review.
type Submission struct {
	ID                    string        `json:"id"`
	FullName              string        `json:"fullName"`
	Email                 string        `json:"email"`
	Phone                 string        `json:"phone,omitempty"`
	Location              string        `json:"location,omitempty"`
	HasReadGuidelines     bool          `json:"hasReadGuidelines"`
	AgreedTermsSubmission bool          `json:"agreedTermsSubmission"`
	UploadType            string        `json:"uploadType"`
	Letter                LetterSection `json:"letter"`
	Photo                 PhotoSection  `json:"photo"`
	Before2000            string        `json:"before2000"`
	Notes                 string        `json:"notes,omitempty"`
	Status                string        `json:"status"`
	LetterStatus          string        `json:"letterStatus"`
	PhotoStatus           string        `json:"photoStatus"`
	FeaturedLetter        bool          `json:"featuredLetter"`
	FeaturedPhoto         bool          `json:"featuredPhoto"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

package contact

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/khatkhazana-hub/backend/internal/domain"
	"github.com/khatkhazana-hub/backend/internal/mailer"
	contactrepo "github.com/khatkhazana-hub/backend/internal/repository/contact"
)

type repo interface {
	Insert(ctx context.Context, in contactrepo.CreateContactInput) (*domain.Contact, error)
	List(ctx context.Context, filter contactrepo.ListFilter) ([]domain.Contact, int, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo     repo
	mail     mailer.Sender
	notifyTo string
	logger   *log.Logger
}

func New(r contactrepo.Repository, mail mailer.Sender, notifyTo string, logger *log.Logger) *Service {
	return &Service{repo: r, mail: mail, notifyTo: notifyTo, logger: logger}
}

type CreateInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	Message   string `json:"message"`
	Subscribe bool   `json:"subscribe"`
}

type ListInput struct {
	Search string
	Limit  int
	Offset int
}

// ListOutput carries one page plus the total matching count.
type ListOutput struct {
	Contacts []domain.Contact `json:"contacts"`
	Total    int              `json:"total"`
}

// Create stores the submission, then notifies the shop owner. Delivery
// failure is logged and swallowed: the submission is already persisted
// and the client should not see a mail-relay error.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Contact, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, domain.Invalid("name and email are required")
	}

	contact, err := s.repo.Insert(ctx, contactrepo.CreateContactInput{
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		State:     strings.TrimSpace(in.State),
		Country:   strings.TrimSpace(in.Country),
		Zip:       strings.TrimSpace(in.Zip),
		Message:   strings.TrimSpace(in.Message),
		Subscribe: in.Subscribe,
	})
	if err != nil {
		return nil, err
	}

	if s.notifyTo != "" {
		if err := s.mail.Send(ctx, notification(contact, s.notifyTo)); err != nil {
			s.logger.Printf("contact notification for %s failed: %v", contact.ID, err)
		}
	}
	return contact, nil
}

func (s *Service) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	limit := in.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}
	contacts, total, err := s.repo.List(ctx, contactrepo.ListFilter{
		Search: strings.TrimSpace(in.Search),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return &ListOutput{Contacts: contacts, Total: total}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func notification(c *domain.Contact, to string) mailer.Message {
	var b strings.Builder
	b.WriteString("<h2>New contact submission</h2><table>")
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<tr><td><b>%s</b></td><td>%s</td></tr>", label, html.EscapeString(value))
	}
	row("Name", c.Name)
	row("Email", c.Email)
	row("Phone", c.Phone)
	row("Address", c.Address)
	row("City", c.City)
	row("State", c.State)
	row("Country", c.Country)
	row("Zip", c.Zip)
	row("Message", c.Message)
	b.WriteString("</table>")

	return mailer.Message{
		To:      []string{to},
		Subject: fmt.Sprintf("New contact from %s", c.Name),
		HTML:    b.String(),
	}
}

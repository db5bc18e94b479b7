package mailer

import (
	"fmt"
	"time"

	"github.com/resend/resend-go/v3"

	"github.com/janiskrasemann/whisker/internal/renderer"
)

// HeaderImageCID is the content ID under which the header image is attached.
const HeaderImageCID = "header-image"

// sender is the part of the Resend emails service the mailer uses.
type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Mailer struct {
	from        string
	to          string
	emails      sender
	headerImage []byte
	now         func() time.Time
}

func New(from, to, apiKey string, headerImage []byte) *Mailer {
	client := resend.NewClient(apiKey)
	return &Mailer{
		from:        from,
		to:          to,
		emails:      client.Emails,
		headerImage: headerImage,
		now:         time.Now,
	}
}

// HasHeaderImage reports whether cards should reference the inline header.
func (m *Mailer) HasHeaderImage() bool { return len(m.headerImage) > 0 }

// Send delivers a rendered card and returns the provider's message ID.
func (m *Mailer) Send(card *renderer.RenderedCard) (string, error) {
	subject := fmt.Sprintf("Cat fact of the day: %s", m.now().Format("Jan 2, 2006"))

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: subject,
		Html:    card.HTML,
		Text:    card.Text,
	}

	if m.HasHeaderImage() {
		params.Attachments = []*resend.Attachment{
			{
				Content:   m.headerImage,
				Filename:  "header.jpg",
				ContentId: HeaderImageCID,
			},
		}
	}

	sent, err := m.emails.Send(params)
	if err != nil {
		return "", fmt.Errorf("sending email via resend: %w", err)
	}
	return sent.Id, nil
}

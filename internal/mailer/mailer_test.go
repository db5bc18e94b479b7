package mailer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/resend/resend-go/v3"

	"github.com/janiskrasemann/whisker/internal/renderer"
)

type fakeSender struct {
	got *resend.SendEmailRequest
	err error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.got = params
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func newTestMailer(s sender, header []byte) *Mailer {
	m := New("whisker@localhost", "you@localhost", "re_test", header)
	m.emails = s
	m.now = func() time.Time { return time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC) }
	return m
}

func TestSend(t *testing.T) {
	s := &fakeSender{}
	m := newTestMailer(s, nil)

	id, err := m.Send(&renderer.RenderedCard{HTML: "<p>fact</p>", Text: "fact"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "email-1" {
		t.Errorf("expected id 'email-1', got %q", id)
	}
	if s.got.Subject != "Cat fact of the day: Oct 14, 2026" {
		t.Errorf("unexpected subject %q", s.got.Subject)
	}
	if len(s.got.To) != 1 || s.got.To[0] != "you@localhost" {
		t.Errorf("unexpected recipients %v", s.got.To)
	}
	if s.got.Html != "<p>fact</p>" || s.got.Text != "fact" {
		t.Error("expected rendered bodies to be passed through")
	}
	if len(s.got.Attachments) != 0 {
		t.Error("expected no attachments without header image")
	}
}

func TestSendWithHeaderImage(t *testing.T) {
	s := &fakeSender{}
	m := newTestMailer(s, []byte{0xff, 0xd8})

	if _, err := m.Send(&renderer.RenderedCard{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.got.Attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(s.got.Attachments))
	}
	if s.got.Attachments[0].ContentId != HeaderImageCID {
		t.Errorf("unexpected content id %q", s.got.Attachments[0].ContentId)
	}
}

func TestSendError(t *testing.T) {
	m := newTestMailer(&fakeSender{err: errors.New("rate limited")}, nil)

	_, err := m.Send(&renderer.RenderedCard{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

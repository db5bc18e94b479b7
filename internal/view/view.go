// Package view holds the observers that display a finished cat card.
package view

import (
	"fmt"
	"io"
	"os"

	"github.com/janiskrasemann/whisker/internal/cats"
	"github.com/janiskrasemann/whisker/internal/logging"
	"github.com/janiskrasemann/whisker/internal/renderer"
)

// Populator is satisfied by every view in this package.
type Populator interface {
	Populate(model cats.FactAndImage)
}

// Console writes the plain-text card to w.
type Console struct {
	w      io.Writer
	rend   *renderer.Renderer
	logger logging.Logger
}

func NewConsole(w io.Writer, rend *renderer.Renderer, logger logging.Logger) *Console {
	return &Console{w: w, rend: rend, logger: logger}
}

func (c *Console) Populate(model cats.FactAndImage) {
	card, err := c.rend.Render(model)
	if err != nil {
		c.logger.Error("Failed to render card", err)
		return
	}
	if _, err := io.WriteString(c.w, card.Text); err != nil {
		c.logger.Error("Failed to write card", err)
	}
}

// File writes the HTML card into a file and remembers its path.
type File struct {
	path   string
	rend   *renderer.Renderer
	logger logging.Logger
	done   chan string
}

// NewFile returns a view writing to path. An empty path creates a temp file
// on the first Populate.
func NewFile(path string, rend *renderer.Renderer, logger logging.Logger) *File {
	return &File{path: path, rend: rend, logger: logger, done: make(chan string, 1)}
}

// Written delivers the path of the file once it has been written.
func (f *File) Written() <-chan string { return f.done }

func (f *File) Populate(model cats.FactAndImage) {
	card, err := f.rend.Render(model)
	if err != nil {
		f.logger.Error("Failed to render card", err)
		return
	}
	path, err := f.write(card.HTML)
	if err != nil {
		f.logger.Error("Failed to write HTML", err)
		return
	}
	f.logger.Info("HTML written", logging.String("path", path))
	select {
	case f.done <- path:
	default:
	}
}

func (f *File) write(html string) (string, error) {
	if f.path != "" {
		return f.path, os.WriteFile(f.path, []byte(html), 0644)
	}
	tmp, err := os.CreateTemp("", "whisker-card-*.html")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer tmp.Close()
	if _, err := tmp.WriteString(html); err != nil {
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	return tmp.Name(), nil
}

// CardSender delivers rendered cards, e.g. by email.
type CardSender interface {
	Send(card *renderer.RenderedCard) (string, error)
}

// Mail renders the card and hands it to a sender.
type Mail struct {
	rend   *renderer.Renderer
	sender CardSender
	logger logging.Logger
}

func NewMail(rend *renderer.Renderer, sender CardSender, logger logging.Logger) *Mail {
	return &Mail{rend: rend, sender: sender, logger: logger}
}

func (m *Mail) Populate(model cats.FactAndImage) {
	card, err := m.rend.Render(model)
	if err != nil {
		m.logger.Error("Failed to render card", err)
		return
	}
	id, err := m.sender.Send(card)
	if err != nil {
		m.logger.Error("Failed to send card", err)
		return
	}
	m.logger.Info("Card sent", logging.String("email_id", id))
}

// Multi forwards every model to each of its views in order.
type Multi []Populator

func (m Multi) Populate(model cats.FactAndImage) {
	for _, v := range m {
		v.Populate(model)
	}
}

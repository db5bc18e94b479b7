package renderer

import (
	"bytes"
	_ "embed"
	"fmt"
	htmltpl "html/template"
	"net/url"
	"strings"
	texttpl "text/template"
	"time"

	"github.com/yuin/goldmark"

	"github.com/janiskrasemann/whisker/internal/cats"
)

//go:embed templates/card.html
var defaultHTMLTemplate string

//go:embed templates/card.txt
var defaultTextTemplate string

type CardData struct {
	Date      string
	Card      cats.FactAndImage
	HeaderCID string
}

type RenderedCard struct {
	Card cats.FactAndImage
	HTML string
	Text string
}

type Renderer struct {
	htmlTpl   *htmltpl.Template
	textTpl   *texttpl.Template
	headerCID string
	now       func() time.Time
}

func New(htmlTemplate, textTemplate string) (*Renderer, error) {
	funcMap := htmltpl.FuncMap{
		"markdown": renderMarkdown,
		"excerpt":  excerpt,
		"hostOf":   hostOf,
	}
	textFuncMap := texttpl.FuncMap{
		"excerpt": excerpt,
		"hostOf":  hostOf,
	}

	ht, err := htmltpl.New("card.html").Funcs(funcMap).Parse(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML template: %w", err)
	}

	tt, err := texttpl.New("card.txt").Funcs(textFuncMap).Parse(textTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing text template: %w", err)
	}

	return &Renderer{htmlTpl: ht, textTpl: tt, now: time.Now}, nil
}

// NewDefault returns a renderer using the built-in card templates.
func NewDefault() (*Renderer, error) {
	return New(defaultHTMLTemplate, defaultTextTemplate)
}

// SetHeaderCID makes the HTML card reference an inline attachment with the
// given content ID above the cat picture.
func (r *Renderer) SetHeaderCID(cid string) {
	r.headerCID = cid
}

func (r *Renderer) Render(card cats.FactAndImage) (*RenderedCard, error) {
	data := CardData{
		Date:      r.now().Format("Monday, January 2, 2006"),
		Card:      card,
		HeaderCID: r.headerCID,
	}

	var htmlBuf bytes.Buffer
	if err := r.htmlTpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}

	var textBuf bytes.Buffer
	if err := r.textTpl.Execute(&textBuf, data); err != nil {
		return nil, fmt.Errorf("rendering text: %w", err)
	}

	return &RenderedCard{
		Card: card,
		HTML: htmlBuf.String(),
		Text: textBuf.String(),
	}, nil
}

// Facts come from a third party, so raw HTML in them is not passed through.
var md = goldmark.New()

func renderMarkdown(s string) htmltpl.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(s), &buf); err != nil {
		return htmltpl.HTML(htmltpl.HTMLEscapeString(s))
	}
	return htmltpl.HTML(buf.String())
}

func excerpt(s string, maxSentences int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var sentences []string
	remaining := s
	for i := 0; i < maxSentences && remaining != ""; i++ {
		idx := -1
		for _, sep := range []string{". ", "! ", "? "} {
			if j := strings.Index(remaining, sep); j != -1 && (idx == -1 || j < idx) {
				idx = j + 1
			}
		}
		if idx == -1 {
			sentences = append(sentences, remaining)
			break
		}
		sentences = append(sentences, remaining[:idx])
		remaining = strings.TrimSpace(remaining[idx:])
	}
	result := strings.Join(sentences, " ")
	if len(result) > 280 {
		result = result[:277] + "..."
	}
	return result
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// Package render turns dashboard views into the HTML fragments the browser
// swaps into each section.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Renderer is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
	loc  *time.Location
}

// New parses the fragment templates. Times are shown in loc, UTC when nil.
func New(loc *time.Location) (*Renderer, error) {
	if loc == nil {
		loc = time.UTC
	}

	r := &Renderer{
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		loc: loc,
	}

	tmpl, err := template.New("fragments").Funcs(template.FuncMap{
		"amount":      Amount,
		"capitalize":  Capitalize,
		"statusLabel": StatusLabel,
		"statusClass": StatusClass,
		"serviceName": ServiceName,
		"clock":       func(t time.Time) string { return Clock(t, r.loc) },
		"date":        func(t time.Time) string { return Date(t, r.loc) },
		"markdown":    r.markdown,
	}).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parsing fragment templates: %w", err)
	}
	r.tmpl = tmpl

	return r, nil
}

func (r *Renderer) Transactions(txs []entity.Transaction) ([]byte, error) {
	return r.execute("transactions", txs)
}

func (r *Renderer) Services(services []entity.ServiceHealth) ([]byte, error) {
	return r.execute("services", services)
}

func (r *Renderer) ErrorCodes(codes []entity.ErrorCode) ([]byte, error) {
	return r.execute("error_codes", codes)
}

func (r *Renderer) Tickets(tickets []entity.SupportTicket) ([]byte, error) {
	return r.execute("tickets", tickets)
}

// EndpointOptions renders the console's endpoint <option> list.
func (r *Renderer) EndpointOptions(endpoints []entity.APIEndpoint) ([]byte, error) {
	return r.execute("endpoints", endpoints)
}

func (r *Renderer) Knowledge(items []entity.KnowledgeItem) ([]byte, error) {
	return r.execute("knowledge", items)
}

func (r *Renderer) Troubleshooting(heading string, steps []string) ([]byte, error) {
	return r.execute("troubleshooting", struct {
		Heading string
		Steps   []string
	}{heading, steps})
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// markdown converts source to HTML. Raw HTML in source is not passed
// through.
func (r *Renderer) markdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	//nolint:gosec // goldmark escapes raw HTML unless WithUnsafe is set
	return template.HTML(buf.String()), nil
}

package incidentreport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alnah/go-incidentreport/internal/assets"
)

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	logoURL    string
	httpClient *http.Client
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("incidentreport: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithTheme sets the document theme. The theme is validated by NewService.
func WithTheme(t *Theme) Option {
	return func(s *Service) {
		s.theme = t
	}
}

// WithLogoURL enables the best-effort logotype fetch from the given URL.
func WithLogoURL(url string) Option {
	return func(s *Service) {
		s.cfg.logoURL = url
	}
}

// WithHTTPClient sets the client used for the logotype fetch.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		s.cfg.httpClient = c
	}
}

// WithLogoFetcher injects a custom logotype fetcher (e.g., by tests or for
// non-HTTP sources). Takes precedence over WithLogoURL.
func WithLogoFetcher(f LogoFetcher) Option {
	return func(s *Service) {
		s.fetcher = f
	}
}

// WithPDFRenderer injects a PDF backend (e.g., by tests).
func WithPDFRenderer(r PDFRenderer) Option {
	return func(s *Service) {
		s.pdf = r
	}
}

// Result contains one generated report.
type Result struct {
	Document *ReportDocument
	HTML     []byte
	PDF      []byte // nil when PDF generation was skipped
}

// Service orchestrates report generation: template assembly, HTML
// serialization, and PDF rendering.
type Service struct {
	cfg       serviceConfig
	theme     *Theme
	fetcher   LogoFetcher
	assembler *Assembler
	html      *htmlRenderer
	pdf       PDFRenderer
}

// NewService creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithTheme,
// WithLogoURL). Returns an error if the configured theme is invalid.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.theme.Validate(); err != nil {
		return nil, err
	}
	if s.theme == nil {
		s.theme = DefaultTheme()
	}

	if s.fetcher == nil && s.cfg.logoURL != "" {
		s.fetcher = &httpLogoFetcher{
			inner: assets.NewHTTPFetcher(s.cfg.logoURL, s.cfg.httpClient, 0),
		}
	}

	s.assembler = NewAssembler(s.theme, s.fetcher)
	s.html = newHTMLRenderer(s.theme)

	// Create PDF renderer if not injected (e.g., by tests)
	if s.pdf == nil {
		s.pdf = newRodRenderer(s.cfg.timeout)
	}

	return s, nil
}

// Generate assembles the report and serializes it to HTML and PDF.
func (s *Service) Generate(ctx context.Context, fields ReportFields) (*Result, error) {
	doc := s.assembler.AssembleReport(ctx, fields)

	htmlBytes, err := s.html.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("serializing to HTML: %w", err)
	}

	pdfBytes, err := s.pdf.RenderPDF(ctx, string(htmlBytes))
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}

	return &Result{Document: doc, HTML: htmlBytes, PDF: pdfBytes}, nil
}

// GenerateHTML assembles the report and serializes it to HTML only.
func (s *Service) GenerateHTML(ctx context.Context, fields ReportFields) (*Result, error) {
	doc := s.assembler.AssembleReport(ctx, fields)

	htmlBytes, err := s.html.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("serializing to HTML: %w", err)
	}

	return &Result{Document: doc, HTML: htmlBytes}, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// httpLogoFetcher adapts the internal HTTP fetcher to the LogoFetcher
// capability.
type httpLogoFetcher struct {
	inner *assets.HTTPFetcher
}

func (f *httpLogoFetcher) FetchLogo(ctx context.Context) (*Logo, error) {
	data, mime, err := f.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return &Logo{Data: data, MIME: mime}, nil
}

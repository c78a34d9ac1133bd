package favicon

import (
	"bytes"
	"context"
	"encoding/binary"
	"image"
	_ "image/gif"  // GIF header decoding
	_ "image/jpeg" // JPEG header decoding
	_ "image/png"  // PNG header decoding
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"  // BMP header decoding
	_ "golang.org/x/image/webp" // WebP header decoding

	"github.com/bnema/tempo/internal/logging"
)

const (
	// DefaultProbeTimeout bounds a single candidate probe.
	DefaultProbeTimeout = 3000 * time.Millisecond
	// maxProbeBody caps how much of a candidate response is read.
	maxProbeBody = 256 << 10
	// defaultUserAgent is sent with probe requests.
	defaultUserAgent = "tempo-favicon/1.0"
)

// Prober tests whether a candidate URL serves a usable image.
// Implementations must return within a bounded time and never panic.
type Prober interface {
	Probe(ctx context.Context, rawURL string) bool
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, rawURL string) bool

// Probe calls f.
func (f ProberFunc) Probe(ctx context.Context, rawURL string) bool {
	return f(ctx, rawURL)
}

// HTTPProber probes candidates with an HTTP GET and validates that the body
// is an image with positive dimensions.
type HTTPProber struct {
	client  *resty.Client
	timeout atomic.Int64
	maxBody int64
}

// ProberConfig configures an HTTPProber.
type ProberConfig struct {
	Timeout   time.Duration
	UserAgent string
	Logger    zerolog.Logger
}

// NewHTTPProber creates an HTTPProber. Zero config values fall back to defaults.
func NewHTTPProber(cfg ProberConfig) *HTTPProber {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultProbeTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	// Probe deadlines come from the context, see SetTimeout.
	client := resty.New().
		SetLogger(restyLogger{log: cfg.Logger}).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "image/*,*/*;q=0.8")

	p := &HTTPProber{
		client:  client,
		maxBody: maxProbeBody,
	}
	p.timeout.Store(int64(cfg.Timeout))
	return p
}

// SetTimeout changes the bound for probes started afterwards. Values <= 0
// restore DefaultProbeTimeout.
func (p *HTTPProber) SetTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultProbeTimeout
	}
	p.timeout.Store(int64(d))
}

// Timeout returns the current probe bound.
func (p *HTTPProber) Timeout() time.Duration {
	return time.Duration(p.timeout.Load())
}

// Probe fetches rawURL and reports whether it is a loadable image. Data URLs
// carrying an image are accepted without network access.
func (p *HTTPProber) Probe(ctx context.Context, rawURL string) bool {
	if strings.HasPrefix(rawURL, "data:image/") {
		return len(rawURL) > len("data:image/")
	}

	log := logging.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, p.Timeout())
	defer cancel()

	resp, err := p.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		log.Debug().Err(err).Str("url", rawURL).Msg("favicon probe failed")
		return false
	}
	body := resp.RawBody()
	if body == nil {
		return false
	}
	defer func() { _ = body.Close() }()

	if !resp.IsSuccess() {
		log.Debug().Int("status", resp.StatusCode()).Str("url", rawURL).Msg("favicon probe returned non-OK status")
		return false
	}

	data, err := io.ReadAll(io.LimitReader(body, p.maxBody))
	if err != nil || len(data) == 0 {
		log.Debug().Err(err).Str("url", rawURL).Msg("favicon probe body unreadable")
		return false
	}

	ok := isUsableImage(data)
	log.Debug().Bool("ok", ok).Int("bytes", len(data)).Str("url", rawURL).Msg("favicon probed")
	return ok
}

// isUsableImage reports whether data is an image with positive width and
// height. ICO dimensions come from the icon directory; SVG has no intrinsic
// raster size and is accepted once sniffed.
func isUsableImage(data []byte) bool {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return false
	}

	switch {
	case mt.Is("image/x-icon"), mt.Is("image/vnd.microsoft.icon"):
		return validICO(data)
	case mt.Is("image/svg+xml"):
		return true
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false
	}
	return cfg.Width > 0 && cfg.Height > 0
}

// validICO checks the ICONDIR header. A zero width or height byte in an
// entry means 256 pixels, so any well-formed entry has positive dimensions.
func validICO(data []byte) bool {
	const (
		headerSize = 6
		entrySize  = 16
	)
	if len(data) < headerSize+entrySize {
		return false
	}
	reserved := binary.LittleEndian.Uint16(data[0:2])
	kind := binary.LittleEndian.Uint16(data[2:4])
	count := binary.LittleEndian.Uint16(data[4:6])
	return reserved == 0 && kind == 1 && count > 0
}

// restyLogger routes resty's internal logging to zerolog.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.log.Debug().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Debug().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Trace().Msgf(format, v...) }

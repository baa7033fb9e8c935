package roku

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/urmzd/homai-roku/pkg/device"
	"github.com/urmzd/homai-roku/pkg/metrics"
	"golang.org/x/time/rate"
)

// DefaultPort is the ECP port every Roku listens on.
const DefaultPort = 8060

// TransportError is returned when an ECP request fails on the network or
// the device answers with a non-2xx status.
type TransportError struct {
	Op     string
	URL    string
	Status int // 0 when no response was received
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("roku %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches device.ErrTransport, and device.ErrTimeout when the request
// timed out, so callers need not know about net.Error.
func (e *TransportError) Is(target error) bool {
	switch target {
	case device.ErrTransport:
		return true
	case device.ErrTimeout:
	default:
		return false
	}
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// Client talks the Roku External Control Protocol to a single device.
type Client struct {
	baseURL string
	http    *resty.Client
	limiter *rate.Limiter
	metrics *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithKeypressRate limits key events to perSecond. Zero means unlimited.
func WithKeypressRate(perSecond float64) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// WithMetrics records every request on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a client for the device at baseURL (http://host:8060).
func NewClient(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")

	c := &Client{
		baseURL: baseURL,
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10*time.Second).
			SetHeader("User-Agent", "homai-roku/1.0"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NormalizeURL turns a bare host or host:port into an ECP base URL,
// defaulting the scheme to http and the port to DefaultPort.
func NormalizeURL(hostOrURL string) string {
	s := strings.TrimRight(strings.TrimSpace(hostOrURL), "/")
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return s
	}
	if u.Port() == "" {
		u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(DefaultPort))
	}
	return u.String()
}

// BaseURL returns the device URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Keypress presses and releases a key.
func (c *Client) Keypress(ctx context.Context, key Key) error {
	return c.key(ctx, "keypress", key)
}

// Keydown presses a key without releasing it.
func (c *Client) Keydown(ctx context.Context, key Key) error {
	return c.key(ctx, "keydown", key)
}

// Keyup releases a key.
func (c *Client) Keyup(ctx context.Context, key Key) error {
	return c.key(ctx, "keyup", key)
}

// Text types a string one literal character at a time.
func (c *Client) Text(ctx context.Context, text string) error {
	for _, r := range text {
		if err := c.Keypress(ctx, Key("Lit_"+url.PathEscape(string(r)))); err != nil {
			return err
		}
	}
	return nil
}

// Launch starts an app. params are passed through as deep-link arguments
// (contentId, mediaType).
func (c *Client) Launch(ctx context.Context, appID string, params map[string]string) error {
	_, err := c.do(ctx, "launch", http.MethodPost, "/launch/{app}", func(r *resty.Request) {
		r.SetPathParam("app", appID)
		if len(params) > 0 {
			r.SetQueryParams(params)
		}
	})
	return err
}

// Apps returns every app installed on the device.
func (c *Client) Apps(ctx context.Context) ([]device.App, error) {
	resp, err := c.do(ctx, "apps", http.MethodGet, "/query/apps", nil)
	if err != nil {
		return nil, err
	}
	apps, err := decodeApps(resp.Body())
	if err != nil {
		return nil, c.malformed("apps", err)
	}
	return apps, nil
}

// ActiveApp returns the foreground app and screensaver.
func (c *Client) ActiveApp(ctx context.Context) (*device.ActiveApp, error) {
	resp, err := c.do(ctx, "active-app", http.MethodGet, "/query/active-app", nil)
	if err != nil {
		return nil, err
	}
	active, err := decodeActiveApp(resp.Body())
	if err != nil {
		return nil, c.malformed("active-app", err)
	}
	return active, nil
}

// Info returns the normalized device-info document.
func (c *Client) Info(ctx context.Context) (device.Info, error) {
	resp, err := c.do(ctx, "device-info", http.MethodGet, "/query/device-info", nil)
	if err != nil {
		return nil, err
	}
	info, err := decodeInfo(resp.Body())
	if err != nil {
		return nil, c.malformed("device-info", err)
	}
	return info, nil
}

// MediaPlayer returns the media player state.
func (c *Client) MediaPlayer(ctx context.Context) (*device.MediaPlayer, error) {
	resp, err := c.do(ctx, "media-player", http.MethodGet, "/query/media-player", nil)
	if err != nil {
		return nil, err
	}
	player, err := decodeMediaPlayer(resp.Body())
	if err != nil {
		return nil, c.malformed("media-player", err)
	}
	return player, nil
}

// Icon returns an app's icon image.
func (c *Client) Icon(ctx context.Context, appID string) (*device.Icon, error) {
	resp, err := c.do(ctx, "icon", http.MethodGet, "/query/icon/{app}", func(r *resty.Request) {
		r.SetPathParam("app", appID)
	})
	if err != nil {
		return nil, err
	}
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(resp.Body())
	}
	return &device.Icon{ContentType: contentType, Data: resp.Body()}, nil
}

// Search runs a search on the device.
func (c *Client) Search(ctx context.Context, q device.SearchQuery) error {
	_, err := c.do(ctx, "search", http.MethodPost, "/search/browse", func(r *resty.Request) {
		r.SetQueryParamsFromValues(searchValues(q))
	})
	return err
}

func (c *Client) key(ctx context.Context, op string, key Key) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			// Wait fails early, with ctx still live, when the next token
			// would arrive after the deadline.
			if ctx.Err() == nil {
				err = fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
			}
			return &TransportError{Op: op, URL: c.baseURL, Err: err}
		}
	}
	_, err := c.do(ctx, op, http.MethodPost, "/"+op+"/{key}", func(r *resty.Request) {
		r.SetRawPathParam("key", string(key))
	})
	return err
}

func (c *Client) do(ctx context.Context, op, method, path string, configure func(*resty.Request)) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if configure != nil {
		configure(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.metrics.ObserveECP(op, 0, time.Since(start))
		return nil, &TransportError{Op: op, URL: c.baseURL, Err: err}
	}
	c.metrics.ObserveECP(op, resp.StatusCode(), time.Since(start))

	if resp.IsError() {
		return nil, &TransportError{
			Op:     op,
			URL:    c.baseURL,
			Status: resp.StatusCode(),
			Err:    fmt.Errorf("unexpected status %s", resp.Status()),
		}
	}
	return resp, nil
}

func (c *Client) malformed(op string, err error) error {
	return &TransportError{Op: op, URL: c.baseURL, Err: fmt.Errorf("malformed response: %w", err)}
}

// searchValues builds the /search/browse query. Numeric providers are
// channel IDs; anything else is a provider name.
func searchValues(q device.SearchQuery) url.Values {
	v := url.Values{}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	if q.Title != "" {
		v.Set("title", q.Title)
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.TMSID != "" {
		v.Set("tmsid", q.TMSID)
	}
	if q.Season > 0 {
		v.Set("season", strconv.Itoa(q.Season))
	}
	if q.ShowUnavailable {
		v.Set("show-unavailable", "true")
	}
	if q.MatchAny {
		v.Set("match-any", "true")
	}
	if q.Launch {
		v.Set("launch", "true")
	}

	var ids, names []string
	for _, p := range q.Providers {
		if _, err := strconv.Atoi(p); err == nil {
			ids = append(ids, p)
		} else {
			names = append(names, p)
		}
	}
	if len(ids) > 0 {
		v.Set("provider-id", strings.Join(ids, ","))
	}
	if len(names) > 0 {
		v.Set("provider", strings.Join(names, ","))
	}
	return v
}

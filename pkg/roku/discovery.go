package roku

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/homai-roku/pkg/device"
	"github.com/urmzd/homai-roku/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	ssdpMulticastAddr = "239.255.255.250:1900"
	searchTarget      = "roku:ecp"

	// DefaultScanTimeout is how long a scan listens for SSDP replies.
	DefaultScanTimeout = 10 * time.Second

	// MaxScanDuration bounds background discovery.
	MaxScanDuration = 10 * time.Minute
)

// Discoverer finds Rokus on the local network with SSDP and publishes what
// it finds to subscribers.
type Discoverer struct {
	timeout  time.Duration
	addr     string
	metrics  *metrics.Metrics
	infoFunc func(ctx context.Context, baseURL string) (device.Info, error)

	subscribers   []chan device.DiscoveryEvent
	subscribersMu sync.Mutex

	// scanMu guards the background scan. Scan events are published while
	// holding it so they reach subscribers in order.
	scanMu     sync.Mutex
	scanCancel context.CancelFunc
	scanGen    uint64
	expiresAt  time.Time
	seen       map[string]bool
}

var _ device.Discoverer = (*Discoverer)(nil)

// NewDiscoverer creates a discoverer listening timeout per scan.
func NewDiscoverer(timeout time.Duration, m *metrics.Metrics) *Discoverer {
	if timeout <= 0 {
		timeout = DefaultScanTimeout
	}
	return &Discoverer{
		timeout: timeout,
		addr:    ssdpMulticastAddr,
		metrics: m,
		infoFunc: func(ctx context.Context, baseURL string) (device.Info, error) {
			return NewClient(baseURL, WithMetrics(m)).Info(ctx)
		},
	}
}

// DiscoverAll runs one scan and returns every responding Roku with its
// device-info. Responders whose device-info cannot be read are skipped.
func (d *Discoverer) DiscoverAll(ctx context.Context, timeout time.Duration) ([]device.DiscoveredInfo, error) {
	if timeout <= 0 {
		timeout = d.timeout
	}

	locations, err := d.search(ctx, timeout)
	if err != nil {
		return nil, err
	}

	found := make([]*device.DiscoveredInfo, len(locations))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, loc := range locations {
		g.Go(func() error {
			info, err := d.infoFunc(gctx, loc)
			if err != nil {
				log.Warn().Err(err).Str("url", loc).Msg("Skipping discovered device")
				return nil
			}
			found[i] = &device.DiscoveredInfo{
				Protocol: device.ProtocolRoku,
				URL:      loc,
				IP:       hostOf(loc),
				Info:     info,
			}
			return nil
		})
	}
	_ = g.Wait()

	result := make([]device.DiscoveredInfo, 0, len(found))
	for _, f := range found {
		if f != nil {
			result = append(result, *f)
		}
	}
	d.metrics.ObserveDiscovered(len(result))
	return result, nil
}

// Start scans in the background until duration elapses or Stop is called,
// publishing a device_found event the first time each device answers.
// Starting while a scan is running moves its end to now+duration; devices
// already announced are not announced again.
func (d *Discoverer) Start(duration time.Duration) (time.Time, error) {
	if duration <= 0 || duration > MaxScanDuration {
		return time.Time{}, fmt.Errorf("scan duration must be between 1s and %s", MaxScanDuration)
	}

	d.scanMu.Lock()
	defer d.scanMu.Unlock()

	now := time.Now()
	if d.scanCancel != nil {
		if now.Before(d.expiresAt) {
			d.expiresAt = now.Add(duration)
			return d.expiresAt, nil
		}
		// Expired but its loop has not noticed yet.
		d.finishLocked()
	}

	d.expiresAt = now.Add(duration)

	ctx, cancel := context.WithCancel(context.Background())
	d.scanCancel = cancel
	d.scanGen++
	d.seen = make(map[string]bool)
	d.publishEvent(device.DiscoveryEvent{Type: device.EventScanStarted, Timestamp: time.Now()})

	go d.scanLoop(ctx, d.scanGen)
	return d.expiresAt, nil
}

// Stop ends a background scan. It is a no-op when none is running.
func (d *Discoverer) Stop() {
	d.scanMu.Lock()
	defer d.scanMu.Unlock()

	if d.scanCancel != nil {
		d.finishLocked()
	}
}

// Scanning reports whether a background scan is active.
func (d *Discoverer) Scanning() bool {
	d.scanMu.Lock()
	defer d.scanMu.Unlock()
	return d.scanCancel != nil && time.Now().Before(d.expiresAt)
}

func (d *Discoverer) scanLoop(ctx context.Context, gen uint64) {
	for {
		deadline, ok := d.scanDeadline(gen)
		if !ok {
			return
		}

		scanCtx, cancel := context.WithDeadline(ctx, deadline)
		found, err := d.DiscoverAll(scanCtx, d.timeout)
		cancel()
		if err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("Discovery scan failed")
		}
		d.announce(gen, found)

		wait := min(time.Second, time.Until(deadline))
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// scanDeadline returns when scan gen ends. It reports false once the scan
// is over, finishing it if it just expired.
func (d *Discoverer) scanDeadline(gen uint64) (time.Time, bool) {
	d.scanMu.Lock()
	defer d.scanMu.Unlock()

	if d.scanGen != gen || d.scanCancel == nil {
		return time.Time{}, false
	}
	if !time.Now().Before(d.expiresAt) {
		d.finishLocked()
		return time.Time{}, false
	}
	return d.expiresAt, true
}

func (d *Discoverer) announce(gen uint64, found []device.DiscoveredInfo) {
	d.scanMu.Lock()
	defer d.scanMu.Unlock()

	if d.scanGen != gen || d.scanCancel == nil {
		return
	}
	for i := range found {
		if d.seen[found[i].URL] {
			continue
		}
		d.seen[found[i].URL] = true
		log.Info().Str("url", found[i].URL).Msg("Roku discovered")
		d.publishEvent(device.DiscoveryEvent{
			Type:      device.EventDeviceFound,
			Device:    &found[i],
			Timestamp: time.Now(),
		})
	}
}

// finishLocked ends the running scan. scanMu must be held.
func (d *Discoverer) finishLocked() {
	d.scanCancel()
	d.scanCancel = nil
	d.publishEvent(device.DiscoveryEvent{Type: device.EventScanFinished, Timestamp: time.Now()})
}

// search sends an M-SEARCH and collects unique LOCATION URLs until timeout.
func (d *Discoverer) search(ctx context.Context, timeout time.Duration) ([]string, error) {
	dst, err := net.ResolveUDPAddr("udp4", d.addr)
	if err != nil {
		return nil, fmt.Errorf("resolve ssdp address: %w", err)
	}

	conn, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		return nil, fmt.Errorf("listen udp: %w", err)
	}
	defer func() { _ = conn.Close() }()

	deadline := time.Now().Add(timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	// Unblock the read loop when ctx is cancelled.
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	if _, err := conn.WriteTo(searchRequest(d.addr, timeout), dst); err != nil {
		return nil, fmt.Errorf("send m-search: %w", err)
	}

	var locations []string
	seen := make(map[string]bool)
	buf := make([]byte, 2048)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				break
			}
			return nil, fmt.Errorf("read ssdp reply: %w", err)
		}
		loc, ok := parseSearchResponse(buf[:n])
		if !ok || seen[loc] {
			continue
		}
		seen[loc] = true
		locations = append(locations, loc)
	}
	return locations, nil
}

func searchRequest(host string, timeout time.Duration) []byte {
	mx := int(timeout / time.Second)
	if mx < 1 {
		mx = 1
	}
	if mx > 5 {
		mx = 5
	}
	return []byte("M-SEARCH * HTTP/1.1\r\n" +
		"HOST: " + host + "\r\n" +
		"MAN: \"ssdp:discover\"\r\n" +
		fmt.Sprintf("MX: %d\r\n", mx) +
		"ST: " + searchTarget + "\r\n\r\n")
}

// parseSearchResponse extracts the ECP base URL from an SSDP reply.
func parseSearchResponse(data []byte) (string, bool) {
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(data)), nil)
	if err != nil {
		return "", false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}
	if st := resp.Header.Get("ST"); st != "" && !strings.EqualFold(st, searchTarget) {
		return "", false
	}
	loc := resp.Header.Get("Location")
	u, err := url.Parse(loc)
	if err != nil || u.Host == "" {
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// publishEvent sends a discovery event to all subscribers.
func (d *Discoverer) publishEvent(evt device.DiscoveryEvent) {
	d.subscribersMu.Lock()
	defer d.subscribersMu.Unlock()

	for _, ch := range d.subscribers {
		select {
		case ch <- evt:
		default:
		}
	}
}

func (d *Discoverer) Subscribe() chan device.DiscoveryEvent {
	ch := make(chan device.DiscoveryEvent, 16)
	d.subscribersMu.Lock()
	d.subscribers = append(d.subscribers, ch)
	d.subscribersMu.Unlock()
	return ch
}

func (d *Discoverer) Unsubscribe(ch chan device.DiscoveryEvent) {
	d.subscribersMu.Lock()
	defer d.subscribersMu.Unlock()

	for i, sub := range d.subscribers {
		if sub == ch {
			d.subscribers = append(d.subscribers[:i], d.subscribers[i+1:]...)
			close(ch)
			return
		}
	}
}

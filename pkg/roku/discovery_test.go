package roku

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/homai-roku/pkg/device"
	"github.com/urmzd/homai-roku/pkg/metrics"
)

func ssdpReply(location string) string {
	return "HTTP/1.1 200 OK\r\n" +
		"Cache-Control: max-age=3600\r\n" +
		"ST: roku:ecp\r\n" +
		"USN: uuid:roku:ecp:X004000AB123\r\n" +
		"Location: " + location + "\r\n\r\n"
}

// startResponder answers every M-SEARCH on a loopback socket with replies.
func startResponder(t *testing.T, replies ...string) string {
	t.Helper()
	conn, err := net.ListenPacket("udp4", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	go func() {
		buf := make([]byte, 2048)
		for {
			n, from, err := conn.ReadFrom(buf)
			if err != nil {
				return
			}
			if !strings.HasPrefix(string(buf[:n]), "M-SEARCH") {
				continue
			}
			for _, r := range replies {
				_, _ = conn.WriteTo([]byte(r), from)
			}
		}
	}()
	return conn.LocalAddr().String()
}

func newTestDiscoverer(addr string, m *metrics.Metrics) *Discoverer {
	d := NewDiscoverer(300*time.Millisecond, m)
	d.addr = addr
	d.infoFunc = func(ctx context.Context, baseURL string) (device.Info, error) {
		if strings.Contains(baseURL, "10.0.0.9") {
			return nil, errors.New("connection refused")
		}
		return device.Info{"modelName": "Roku Ultra"}, nil
	}
	return d
}

func TestParseSearchResponse(t *testing.T) {
	loc, ok := parseSearchResponse([]byte(ssdpReply("http://192.168.1.20:8060/")))
	require.True(t, ok)
	assert.Equal(t, "http://192.168.1.20:8060", loc)

	_, ok = parseSearchResponse([]byte(strings.Replace(ssdpReply("http://192.168.1.20:8060/"), "roku:ecp", "upnp:rootdevice", 1)))
	assert.False(t, ok)

	_, ok = parseSearchResponse([]byte("HTTP/1.1 404 Not Found\r\nLocation: http://192.168.1.20:8060/\r\n\r\n"))
	assert.False(t, ok)

	_, ok = parseSearchResponse([]byte("HTTP/1.1 200 OK\r\nST: roku:ecp\r\n\r\n"))
	assert.False(t, ok)

	_, ok = parseSearchResponse([]byte("garbage"))
	assert.False(t, ok)
}

func TestSearchRequest(t *testing.T) {
	req := string(searchRequest(ssdpMulticastAddr, 30*time.Second))

	assert.True(t, strings.HasPrefix(req, "M-SEARCH * HTTP/1.1\r\n"))
	assert.Contains(t, req, "HOST: 239.255.255.250:1900\r\n")
	assert.Contains(t, req, "MAN: \"ssdp:discover\"\r\n")
	assert.Contains(t, req, "MX: 5\r\n")
	assert.Contains(t, req, "ST: roku:ecp\r\n")
	assert.True(t, strings.HasSuffix(req, "\r\n\r\n"))

	assert.Contains(t, string(searchRequest(ssdpMulticastAddr, 200*time.Millisecond)), "MX: 1\r\n")
}

func TestDiscoverAll(t *testing.T) {
	addr := startResponder(t,
		ssdpReply("http://192.168.1.20:8060/"),
		ssdpReply("http://192.168.1.20:8060/"),
		ssdpReply("http://192.168.1.21:8060/"),
		ssdpReply("http://10.0.0.9:8060/"),
	)
	m := metrics.New()
	d := newTestDiscoverer(addr, m)

	found, err := d.DiscoverAll(context.Background(), 300*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, found, 2)

	urls := []string{found[0].URL, found[1].URL}
	assert.ElementsMatch(t, []string{"http://192.168.1.20:8060", "http://192.168.1.21:8060"}, urls)
	for _, f := range found {
		assert.Equal(t, device.ProtocolRoku, f.Protocol)
		assert.Equal(t, "Roku Ultra", f.Info["modelName"])
		assert.True(t, strings.HasPrefix(f.IP, "192.168.1."))
	}
}

func TestDiscoverAll_NoResponders(t *testing.T) {
	addr := startResponder(t)
	d := newTestDiscoverer(addr, nil)

	found, err := d.DiscoverAll(context.Background(), 200*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDiscoverAll_Cancelled(t *testing.T) {
	addr := startResponder(t)
	d := newTestDiscoverer(addr, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := d.DiscoverAll(ctx, 5*time.Second)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestDiscoverer_StartPublishesEvents(t *testing.T) {
	addr := startResponder(t, ssdpReply("http://192.168.1.20:8060/"))
	d := newTestDiscoverer(addr, nil)

	events := d.Subscribe()
	defer d.Unsubscribe(events)

	_, err := d.Start(3 * time.Second)
	require.NoError(t, err)
	assert.True(t, d.Scanning())

	var types []string
	timeout := time.After(5 * time.Second)
	for len(types) < 2 {
		select {
		case evt := <-events:
			types = append(types, evt.Type)
			if evt.Type == device.EventDeviceFound {
				require.NotNil(t, evt.Device)
				assert.Equal(t, "http://192.168.1.20:8060", evt.Device.URL)
			}
		case <-timeout:
			t.Fatalf("timed out waiting for events, got %v", types)
		}
	}
	assert.Equal(t, []string{device.EventScanStarted, device.EventDeviceFound}, types)

	d.Stop()
	assert.False(t, d.Scanning())

	select {
	case evt := <-events:
		assert.Equal(t, device.EventScanFinished, evt.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("no scan_finished event after Stop")
	}
}

func TestDiscoverer_StartRejectsBadDuration(t *testing.T) {
	d := NewDiscoverer(0, nil)

	_, err := d.Start(0)
	assert.Error(t, err)
	_, err = d.Start(MaxScanDuration + time.Second)
	assert.Error(t, err)
	assert.False(t, d.Scanning())
}

func TestDiscoverer_Unsubscribe(t *testing.T) {
	d := NewDiscoverer(0, nil)
	ch := d.Subscribe()
	d.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	d.publishEvent(device.DiscoveryEvent{Type: device.EventScanStarted})
}

func TestDiscoverer_StartWhileRunningExtendsScan(t *testing.T) {
	addr := startResponder(t, ssdpReply("http://192.168.1.20:8060/"))
	d := newTestDiscoverer(addr, nil)

	events := d.Subscribe()
	defer d.Unsubscribe(events)

	first, err := d.Start(3 * time.Second)
	require.NoError(t, err)

	var types []string
	timeout := time.After(5 * time.Second)
	for len(types) < 2 {
		select {
		case evt := <-events:
			types = append(types, evt.Type)
		case <-timeout:
			t.Fatalf("timed out waiting for events, got %v", types)
		}
	}
	require.Equal(t, []string{device.EventScanStarted, device.EventDeviceFound}, types)

	second, err := d.Start(5 * time.Second)
	require.NoError(t, err)
	assert.True(t, second.After(first))

	// The device keeps answering but is not announced again, and the scan
	// is neither restarted nor finished.
	select {
	case evt := <-events:
		t.Fatalf("unexpected %s event after extending the scan", evt.Type)
	case <-time.After(2 * time.Second):
	}
	assert.True(t, d.Scanning())

	d.Stop()
	select {
	case evt := <-events:
		assert.Equal(t, device.EventScanFinished, evt.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("no scan_finished event after Stop")
	}
	select {
	case evt := <-events:
		t.Fatalf("unexpected %s event after Stop", evt.Type)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDiscoverer_ScanExpires(t *testing.T) {
	addr := startResponder(t)
	d := newTestDiscoverer(addr, nil)

	events := d.Subscribe()
	defer d.Unsubscribe(events)

	_, err := d.Start(500 * time.Millisecond)
	require.NoError(t, err)

	var types []string
	timeout := time.After(5 * time.Second)
	for len(types) < 2 {
		select {
		case evt := <-events:
			types = append(types, evt.Type)
		case <-timeout:
			t.Fatalf("timed out waiting for events, got %v", types)
		}
	}
	assert.Equal(t, []string{device.EventScanStarted, device.EventScanFinished}, types)
	assert.False(t, d.Scanning())

	// A later scan starts fresh.
	_, err = d.Start(time.Second)
	require.NoError(t, err)
	select {
	case evt := <-events:
		assert.Equal(t, device.EventScanStarted, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("no scan_started event for the second scan")
	}
	d.Stop()
}

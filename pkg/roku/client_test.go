package roku

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/homai-roku/pkg/device"
	"github.com/urmzd/homai-roku/pkg/metrics"
)

func TestClient_Keypress(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL)

	require.NoError(t, c.Keypress(context.Background(), KeyHome))
	require.NoError(t, c.Keydown(context.Background(), KeyRight))
	require.NoError(t, c.Keyup(context.Background(), KeyRight))

	assert.Equal(t, []string{
		"POST /keypress/Home",
		"POST /keydown/Right",
		"POST /keyup/Right",
	}, fake.seen())
}

func TestClient_Text(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL)

	require.NoError(t, c.Text(context.Background(), "a b"))

	assert.Equal(t, []string{
		"POST /keypress/Lit_a",
		"POST /keypress/Lit_%20",
		"POST /keypress/Lit_b",
	}, fake.seen())
}

func TestClient_Launch(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL)

	err := c.Launch(context.Background(), "12", map[string]string{"contentId": "80057281", "mediaType": "movie"})
	require.NoError(t, err)

	assert.Equal(t, []string{"POST /launch/12"}, fake.seen())
	q, err := url.ParseQuery(fake.lastQuery())
	require.NoError(t, err)
	assert.Equal(t, "80057281", q.Get("contentId"))
	assert.Equal(t, "movie", q.Get("mediaType"))
}

func TestClient_Apps(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL)

	apps, err := c.Apps(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 4)
	assert.Equal(t, device.App{ID: "12", Name: "Netflix", Type: "appl", Version: "4.2.81179021"}, apps[1])
	assert.Equal(t, "tvinput.hdmi1", apps[3].ID)
}

func TestClient_ActiveApp(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL)

	active, err := c.ActiveApp(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active.App)
	assert.Equal(t, "Netflix", active.App.Name)
	require.NotNil(t, active.Screensaver)
	assert.Equal(t, "55545", active.Screensaver.ID)
}

func TestDecodeActiveApp_HomeScreen(t *testing.T) {
	active, err := decodeActiveApp([]byte(homeActiveAppXML))
	require.NoError(t, err)
	assert.Nil(t, active.App)
	assert.Nil(t, active.Screensaver)
}

func TestClient_InfoNormalized(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL)

	info, err := c.Info(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "X004000AB123", info["serialNumber"])
	assert.Equal(t, "Roku Ultra", info["modelName"])
	assert.Equal(t, false, info["isTv"])
	assert.Equal(t, true, info["supportsEthernet"])
	assert.Equal(t, 348726, info["uptime"])
	assert.Equal(t, true, info["hasWifi5GSupport"])
	assert.Equal(t, "PowerOn", info["powerMode"])
}

func TestClient_MediaPlayer(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL)

	player, err := c.MediaPlayer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "play", player.State)
	assert.False(t, player.Error)
	require.NotNil(t, player.Plugin)
	assert.Equal(t, "Netflix", player.Plugin.Name)
	require.NotNil(t, player.Format)
	assert.Equal(t, "widevine", player.Format.DRM)
	assert.Equal(t, "125000 ms", player.Position)
}

func TestClient_Icon(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL)

	icon, err := c.Icon(context.Background(), "12")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", icon.ContentType)
	assert.Len(t, icon.Data, 4)
	assert.Equal(t, device.IconInfo{Type: "image/jpeg", Extension: "jpg"}, icon.Info())
}

func TestClient_Search(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL)

	err := c.Search(context.Background(), device.SearchQuery{
		Keyword:   "the office",
		Type:      device.SearchTypeTVShow,
		Season:    3,
		Launch:    true,
		Providers: []string{"12", "Hulu", "13"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"POST /search/browse"}, fake.seen())
	q, err := url.ParseQuery(fake.lastQuery())
	require.NoError(t, err)
	assert.Equal(t, "the office", q.Get("keyword"))
	assert.Equal(t, "tv-show", q.Get("type"))
	assert.Equal(t, "3", q.Get("season"))
	assert.Equal(t, "true", q.Get("launch"))
	assert.Equal(t, "12,13", q.Get("provider-id"))
	assert.Equal(t, "Hulu", q.Get("provider"))
	assert.Empty(t, q.Get("match-any"))
}

func TestClient_HTTPErrorIsTransportError(t *testing.T) {
	fake := newFakeRoku(t)
	fake.setStatus(http.StatusServiceUnavailable)
	c := NewClient(fake.URL)

	_, err := c.Apps(context.Background())

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "apps", te.Op)
	assert.Equal(t, http.StatusServiceUnavailable, te.Status)
	assert.ErrorIs(t, err, device.ErrTransport)
	assert.NotErrorIs(t, err, device.ErrTimeout)
}

func TestClient_MalformedResponse(t *testing.T) {
	fake := newFakeRoku(t)
	fake.setInfo("not xml at all")
	c := NewClient(fake.URL)

	_, err := c.Info(context.Background())

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.Status)
}

func TestClient_UnreachableDevice(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", WithTimeout(time.Second))

	err := c.Keypress(context.Background(), KeyHome)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.Status)
}

func TestClient_TimeoutMapsToErrTimeout(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := c.Apps(ctx)
	assert.ErrorIs(t, err, device.ErrTimeout)
	assert.ErrorIs(t, err, device.ErrTransport)
}

func TestClient_KeypressRateLimitHonorsContext(t *testing.T) {
	fake := newFakeRoku(t)
	c := NewClient(fake.URL, WithKeypressRate(0.1))

	require.NoError(t, c.Keypress(context.Background(), KeyUp))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := c.Keypress(ctx, KeyUp)
	assert.ErrorIs(t, err, device.ErrTimeout)
	assert.ErrorIs(t, err, device.ErrTransport)
	assert.Equal(t, 1, fake.count("POST /keypress/Up"))

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	err = c.Keypress(cancelled, KeyUp)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, device.ErrTransport)
	assert.NotErrorIs(t, err, device.ErrTimeout)
	assert.Equal(t, 1, fake.count("POST /keypress/Up"))
}

func TestClient_RecordsMetrics(t *testing.T) {
	fake := newFakeRoku(t)
	m := metrics.New()
	c := NewClient(fake.URL, WithMetrics(m))

	require.NoError(t, c.Keypress(context.Background(), KeyPlay))
	fake.setStatus(http.StatusInternalServerError)
	_ = c.Keypress(context.Background(), KeyPlay)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ECPRequests.WithLabelValues("keypress", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ECPRequests.WithLabelValues("keypress", "500")))
}

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"udn":                 "udn",
		"serial-number":       "serialNumber",
		"is-tv":               "isTv",
		"time-zone-auto":      "timeZoneAuto",
		"has-wifi-5G-support": "hasWifi5GSupport",
	}
	for in, want := range cases {
		assert.Equal(t, want, camelCase(in), in)
	}
}

func TestNormalizeURL(t *testing.T) {
	cases := map[string]string{
		"192.168.1.20":              "http://192.168.1.20:8060",
		"192.168.1.20:9000":         "http://192.168.1.20:9000",
		"http://192.168.1.20":       "http://192.168.1.20:8060",
		"http://192.168.1.20:8060/": "http://192.168.1.20:8060",
		" roku.local ":              "http://roku.local:8060",
		"":                          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeURL(in), in)
	}
}

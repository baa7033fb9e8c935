package roku

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const appsXML = `<?xml version="1.0" encoding="UTF-8" ?>
<apps>
	<app id="31012" type="menu" version="1.9.56">Home Screen</app>
	<app id="12" type="appl" version="4.2.81179021">Netflix</app>
	<app id="837" type="appl" version="2.21.91005">YouTube</app>
	<app id="tvinput.hdmi1" type="tvin" version="1.0.0">HDMI 1</app>
</apps>`

const activeAppXML = `<?xml version="1.0" encoding="UTF-8" ?>
<active-app>
	<app id="12" type="appl" version="4.2.81179021">Netflix</app>
	<screensaver id="55545" type="ssvr" version="2.0.1">Default screensaver</screensaver>
</active-app>`

const homeActiveAppXML = `<?xml version="1.0" encoding="UTF-8" ?>
<active-app>
	<app>Roku</app>
</active-app>`

const deviceInfoXML = `<?xml version="1.0" encoding="UTF-8" ?>
<device-info>
	<udn>29380007-0800-1025-80a4-d83154332d7e</udn>
	<serial-number>X004000AB123</serial-number>
	<vendor-name>Roku</vendor-name>
	<model-name>Roku Ultra</model-name>
	<is-tv>false</is-tv>
	<is-stick>false</is-stick>
	<supports-ethernet>true</supports-ethernet>
	<user-device-name>Living Room</user-device-name>
	<uptime>348726</uptime>
	<power-mode>PowerOn</power-mode>
	<has-wifi-5G-support>true</has-wifi-5G-support>
</device-info>`

const mediaPlayerXML = `<?xml version="1.0" encoding="UTF-8" ?>
<player error="false" state="play">
	<plugin bandwidth="12000000 bps" id="12" name="Netflix"/>
	<format audio="aac_adts" captions="none" drm="widevine" video="mpeg4_10b"/>
	<position>125000 ms</position>
	<duration>5400000 ms</duration>
	<is_live>false</is_live>
</player>`

// fakeRoku serves canned ECP responses and records the requests it gets.
type fakeRoku struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
	queries  []string
	apps     string
	info     string
	status   int
}

func newFakeRoku(t *testing.T) *fakeRoku {
	t.Helper()
	f := &fakeRoku{apps: appsXML, info: deviceInfoXML}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.EscapedPath())
		f.queries = append(f.queries, r.URL.RawQuery)
		status, apps, info := f.status, f.apps, f.info
		f.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}

		switch {
		case r.URL.Path == "/query/apps":
			_, _ = w.Write([]byte(apps))
		case r.URL.Path == "/query/active-app":
			_, _ = w.Write([]byte(activeAppXML))
		case r.URL.Path == "/query/device-info":
			_, _ = w.Write([]byte(info))
		case r.URL.Path == "/query/media-player":
			_, _ = w.Write([]byte(mediaPlayerXML))
		case r.URL.Path == "/query/icon/12":
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte{0xff, 0xd8, 0xff, 0xe0})
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeRoku) setStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

func (f *fakeRoku) setApps(xml string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apps = xml
}

func (f *fakeRoku) setInfo(xml string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.info = xml
}

func (f *fakeRoku) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeRoku) lastQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return ""
	}
	return f.queries[len(f.queries)-1]
}

func (f *fakeRoku) count(request string) int {
	n := 0
	for _, r := range f.seen() {
		if r == request {
			n++
		}
	}
	return n
}

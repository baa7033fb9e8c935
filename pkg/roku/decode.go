package roku

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/urmzd/homai-roku/pkg/device"
)

type xmlApp struct {
	ID      string `xml:"id,attr"`
	Type    string `xml:"type,attr"`
	Version string `xml:"version,attr"`
	Name    string `xml:",chardata"`
}

func (a xmlApp) toApp() device.App {
	return device.App{
		ID:      a.ID,
		Name:    strings.TrimSpace(a.Name),
		Type:    a.Type,
		Version: a.Version,
	}
}

type xmlApps struct {
	Apps []xmlApp `xml:"app"`
}

type xmlActiveApp struct {
	App         *xmlApp `xml:"app"`
	Screensaver *xmlApp `xml:"screensaver"`
}

type xmlPlayer struct {
	State  string `xml:"state,attr"`
	Error  bool   `xml:"error,attr"`
	Plugin *struct {
		ID        string `xml:"id,attr"`
		Name      string `xml:"name,attr"`
		Bandwidth string `xml:"bandwidth,attr"`
	} `xml:"plugin"`
	Format *struct {
		Audio    string `xml:"audio,attr"`
		Video    string `xml:"video,attr"`
		Captions string `xml:"captions,attr"`
		DRM      string `xml:"drm,attr"`
	} `xml:"format"`
	Position string `xml:"position"`
	Duration string `xml:"duration"`
	IsLive   bool   `xml:"is_live"`
}

func decodeApps(data []byte) ([]device.App, error) {
	var doc xmlApps
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	apps := make([]device.App, 0, len(doc.Apps))
	for _, a := range doc.Apps {
		apps = append(apps, a.toApp())
	}
	return apps, nil
}

// decodeActiveApp leaves App nil on the home screen, where the device
// reports an <app> element without an id.
func decodeActiveApp(data []byte) (*device.ActiveApp, error) {
	var doc xmlActiveApp
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	active := &device.ActiveApp{}
	if doc.App != nil && doc.App.ID != "" {
		app := doc.App.toApp()
		active.App = &app
	}
	if doc.Screensaver != nil && doc.Screensaver.ID != "" {
		ss := doc.Screensaver.toApp()
		active.Screensaver = &ss
	}
	return active, nil
}

func decodeMediaPlayer(data []byte) (*device.MediaPlayer, error) {
	var doc xmlPlayer
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	player := &device.MediaPlayer{
		State:    doc.State,
		Error:    doc.Error,
		Position: strings.TrimSpace(doc.Position),
		Duration: strings.TrimSpace(doc.Duration),
		IsLive:   doc.IsLive,
	}
	if doc.Plugin != nil {
		player.Plugin = &device.MediaPlugin{
			ID:        doc.Plugin.ID,
			Name:      doc.Plugin.Name,
			Bandwidth: doc.Plugin.Bandwidth,
		}
	}
	if doc.Format != nil {
		player.Format = &device.MediaFormat{
			Audio:    doc.Format.Audio,
			Video:    doc.Format.Video,
			Captions: doc.Format.Captions,
			DRM:      doc.Format.DRM,
		}
	}
	return player, nil
}

// decodeInfo flattens <device-info> into a map keyed by camelCase element
// name, converting booleans and uptime.
func decodeInfo(data []byte) (device.Info, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	info := device.Info{}

	depth := 0
	var key string
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 2 {
				key = t.Name.Local
				text.Reset()
			}
		case xml.CharData:
			if depth == 2 {
				text.Write(t)
			}
		case xml.EndElement:
			if depth == 2 {
				name := camelCase(key)
				info[name] = normalizeValue(name, strings.TrimSpace(text.String()))
			}
			depth--
		}
	}

	if len(info) == 0 {
		return nil, errors.New("empty device-info")
	}
	return info, nil
}

func normalizeValue(key, value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if key == "uptime" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return value
}

// camelCase converts kebab-case ECP element names: serial-number -> serialNumber.
func camelCase(s string) string {
	parts := strings.Split(s, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

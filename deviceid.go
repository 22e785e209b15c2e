package aprsdec

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tocalls.yaml
var tocallsYAML []byte

type deviceEntry struct {
	Tocall string `yaml:"tocall"`
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
	Vendor string `yaml:"vendor"`
	Model  string `yaml:"model"`
}

type deviceDB struct {
	Tocalls    []deviceEntry `yaml:"tocalls"`
	MicE       []deviceEntry `yaml:"mice"`
	MicELegacy []deviceEntry `yaml:"micelegacy"`
}

var (
	deviceDBOnce sync.Once
	devices      deviceDB
	deviceDBErr  error
)

func loadDeviceDB() (*deviceDB, error) {
	deviceDBOnce.Do(func() {
		deviceDBErr = yaml.Unmarshal(tocallsYAML, &devices)
		if deviceDBErr != nil {
			deviceDBErr = fmt.Errorf("device database: %w", deviceDBErr)
			return
		}
		for i := range devices.Tocalls {
			devices.Tocalls[i].Tocall = strings.TrimRight(devices.Tocalls[i].Tocall, "?*n")
		}
		// Longest prefix wins; ties break alphabetically so lookups are
		// deterministic.
		sort.Slice(devices.Tocalls, func(a, b int) bool {
			ta, tb := devices.Tocalls[a].Tocall, devices.Tocalls[b].Tocall
			if len(ta) != len(tb) {
				return len(ta) > len(tb)
			}
			return ta < tb
		})
		sort.Slice(devices.MicE, func(a, b int) bool {
			return len(devices.MicE[a].Suffix) > len(devices.MicE[b].Suffix)
		})
		sort.Slice(devices.MicELegacy, func(a, b int) bool {
			return len(devices.MicELegacy[a].Suffix) > len(devices.MicELegacy[b].Suffix)
		})
	})
	if deviceDBErr != nil {
		return nil, deviceDBErr
	}
	return &devices, nil
}

// DeviceID looks up the sending device from the AX.25 destination
// (to-call) field.  The second return is false when no allocation matches.
func DeviceID(dest string) (string, bool) {
	db, err := loadDeviceDB()
	if err != nil {
		return "", false
	}
	for _, e := range db.Tocalls {
		if strings.HasPrefix(dest, e.Tocall) {
			return e.Vendor + " " + e.Model, true
		}
	}
	return "", false
}

// micETocallExact maps special Mic-E destinations from early Kenwood
// firmware to their real to-calls.
var micETocallExact = map[string]string{
	"T5TYR1": "APK001",
	"T5TYR2": "APK002",
	"T5TYR3": "APK003",
	"T5TYR4": "APK004",
}

// MicETocall translates a Mic-E destination to the equivalent plain
// to-call.  Destinations with no translation come back unchanged.
func MicETocall(dest string) string {
	if t, ok := micETocallExact[dest]; ok {
		return t
	}
	if strings.HasPrefix(dest, "T2T") && len(dest) == 6 {
		return "APN" + dest[3:]
	}
	return dest
}

// micEDevicePrefix identifies the sending radio from the device bytes
// wrapped around the Mic-E comment and strips them.  Kenwood radios lead
// with '>' or ']'; newer trackers lead with a backtick or apostrophe and
// tag a suffix on the end.
func micEDevicePrefix(m *MicE, comment []byte) []byte {
	if len(comment) == 0 {
		return comment
	}
	db, err := loadDeviceDB()
	if err != nil {
		return comment
	}

	for _, e := range db.MicELegacy {
		if len(comment) < 1+len(e.Suffix) || comment[0] != e.Prefix[0] {
			continue
		}
		if !strings.HasSuffix(string(comment), e.Suffix) {
			continue
		}
		m.Device = e.Vendor + " " + e.Model
		return comment[1 : len(comment)-len(e.Suffix)]
	}

	if comment[0] == '`' || comment[0] == '\'' {
		for _, e := range db.MicE {
			if len(comment) >= 1+len(e.Suffix) && strings.HasSuffix(string(comment), e.Suffix) {
				m.Device = e.Vendor + " " + e.Model
				return comment[1 : len(comment)-len(e.Suffix)]
			}
		}
		return comment[1:]
	}
	return comment
}

// aprs2gpx reads TNC2 monitor lines from standard input and writes a GPX
// 1.1 document with one track per sending station.  Packets that carry no
// position are skipped.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/kg4vyx/aprsdec"
)

var quiet = pflag.BoolP("quiet", "q", false, "Suppress warnings about undecodable lines.")

type trackPoint struct {
	lat, lon float64
	altitude *float64
	speed    *float64 // MPH
	when     time.Time
}

func main() {
	pflag.Parse()
	if *quiet {
		log.SetLevel(log.ErrorLevel)
	}

	tracks := map[string][]trackPoint{}
	order := []string{}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pkt, err := aprsdec.ParsePacket(line)
		if err != nil {
			log.Warn("skipping line", "err", err)
			continue
		}
		pt, ok := pointFrom(pkt.Decode())
		if !ok {
			continue
		}
		if _, seen := tracks[pkt.Src]; !seen {
			order = append(order, pkt.Src)
		}
		tracks[pkt.Src] = append(tracks[pkt.Src], pt)
	}
	if err := scanner.Err(); err != nil {
		log.Error("read failed", "err", err)
		os.Exit(1)
	}

	sort.Strings(order)
	writeGPX(os.Stdout, order, tracks)
}

// pointFrom extracts a track point from any payload carrying a position.
func pointFrom(p aprsdec.Payload) (trackPoint, bool) {
	now := time.Now().UTC()
	switch v := p.(type) {
	case *aprsdec.Position:
		return positionPoint(v, now)
	case *aprsdec.MicE:
		if v.Latitude == nil || v.Longitude == nil {
			return trackPoint{}, false
		}
		return trackPoint{
			lat:      v.Latitude.Degrees,
			lon:      v.Longitude.Degrees,
			altitude: v.Altitude,
			speed:    v.SpeedMPH,
			when:     now,
		}, true
	case *aprsdec.Weather:
		if v.Position == nil {
			return trackPoint{}, false
		}
		return positionPoint(v.Position, now)
	case *aprsdec.Object:
		if v.Position == nil {
			return trackPoint{}, false
		}
		return positionPoint(v.Position, now)
	case *aprsdec.ThirdParty:
		return pointFrom(v.Payload)
	}
	return trackPoint{}, false
}

func positionPoint(pos *aprsdec.Position, now time.Time) (trackPoint, bool) {
	if pos.Latitude == nil || pos.Longitude == nil {
		return trackPoint{}, false
	}
	when := now
	if pos.Timestamp != nil {
		when = pos.Timestamp.ResolveIn(now)
	}
	return trackPoint{
		lat:      pos.Latitude.Degrees,
		lon:      pos.Longitude.Degrees,
		altitude: pos.Altitude,
		speed:    pos.SpeedMPH,
		when:     when,
	}, true
}

func writeGPX(w *os.File, order []string, tracks map[string][]trackPoint) {
	out := bufio.NewWriter(w)
	defer out.Flush()

	fmt.Fprintln(out, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	fmt.Fprintln(out, `<gpx version="1.1" creator="aprs2gpx">`)
	for _, src := range order {
		pts := tracks[src]
		fmt.Fprintln(out, "  <trk>")
		fmt.Fprintf(out, "    <name>%s</name>\n", xmlEscape(src))
		fmt.Fprintln(out, "    <trkseg>")
		for _, pt := range pts {
			fmt.Fprintf(out, "      <trkpt lat=\"%.6f\" lon=\"%.6f\">\n", pt.lat, pt.lon)
			if pt.altitude != nil {
				// GPX elevation is meters; decoded altitudes are feet.
				fmt.Fprintf(out, "        <ele>%.1f</ele>\n", *pt.altitude/3.2808399)
			}
			if pt.speed != nil {
				fmt.Fprintf(out, "        <speed>%.1f</speed>\n", *pt.speed)
			}
			fmt.Fprintf(out, "        <time>%s</time>\n", pt.when.Format(time.RFC3339))
			fmt.Fprintln(out, "      </trkpt>")
		}
		fmt.Fprintln(out, "    </trkseg>")
		fmt.Fprintln(out, "  </trk>")
	}
	// A waypoint at each station's last known spot makes the file useful
	// in viewers that ignore tracks.
	for _, src := range order {
		pts := tracks[src]
		last := pts[len(pts)-1]
		fmt.Fprintf(out, "  <wpt lat=\"%.6f\" lon=\"%.6f\">\n", last.lat, last.lon)
		fmt.Fprintf(out, "    <name>%s</name>\n", xmlEscape(src))
		fmt.Fprintln(out, "  </wpt>")
	}
	fmt.Fprintln(out, "</gpx>")
}

func xmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// decodeaprs reads TNC2 monitor lines ("SRC>DST,PATH:info") from standard
// input, or from files named on the command line, and prints the decoded
// contents of each information field.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
	"github.com/tzneal/coordconv"

	"github.com/kg4vyx/aprsdec"
)

var (
	quiet           = pflag.BoolP("quiet", "q", false, "Suppress warnings about undecodable lines.")
	asJSON          = pflag.BoolP("json", "j", false, "Emit one JSON object per packet instead of text.")
	showUTM         = pflag.BoolP("utm", "u", false, "Also print positions as UTM and MGRS coordinates.")
	timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede decoded packets with 'strftime' format time stamp.")
)

func main() {
	pflag.Parse()
	if *quiet {
		log.SetLevel(log.ErrorLevel)
	}

	if pflag.NArg() == 0 {
		decodeStream(os.Stdin, "stdin")
		return
	}
	for _, name := range pflag.Args() {
		f, err := os.Open(name)
		if err != nil {
			log.Error("cannot open input", "file", name, "err", err)
			os.Exit(1)
		}
		decodeStream(f, name)
		f.Close()
	}
}

func decodeStream(r io.Reader, name string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		decodeLine(line)
	}
	if err := scanner.Err(); err != nil {
		log.Error("read failed", "input", name, "err", err)
	}
}

func decodeLine(line string) {
	if *timestampFormat != "" {
		stamp, err := strftime.Format(*timestampFormat, time.Now())
		if err == nil {
			fmt.Printf("[%s] ", stamp)
		}
	}

	pkt, err := aprsdec.ParsePacket(line)
	if err != nil {
		log.Warn("not a TNC2 monitor line", "line", line, "err", err)
		fmt.Println(line)
		return
	}
	payload := pkt.Decode()

	if *asJSON {
		printJSON(pkt, payload)
	} else {
		printText(pkt, payload)
	}

	if *showUTM {
		if lat, lon, ok := payloadLatLon(payload); ok {
			printUTM(lat, lon)
		}
	}
}

func printJSON(pkt *aprsdec.Packet, payload aprsdec.Payload) {
	out := struct {
		Src     string          `json:"src"`
		Dst     string          `json:"dst"`
		Path    []string        `json:"path,omitempty"`
		Type    string          `json:"type"`
		Payload aprsdec.Payload `json:"payload"`
	}{pkt.Src, pkt.Dst, pkt.Path, aprsdec.Classify(pkt.Info).String(), payload}
	b, err := json.Marshal(out)
	if err != nil {
		log.Error("marshal failed", "err", err)
		return
	}
	fmt.Println(string(b))
}

func printText(pkt *aprsdec.Packet, payload aprsdec.Payload) {
	fmt.Printf("%s>%s: ", pkt.Src, pkt.Dst)
	switch v := payload.(type) {
	case *aprsdec.Position:
		fmt.Printf("position%s %s symbol %c%c%s\n",
			timestampSuffix(v.Timestamp), latLonText(v.Latitude, v.Longitude),
			v.SymbolTable, v.SymbolCode, commentSuffix(v.Comment))
	case *aprsdec.MicE:
		fmt.Printf("Mic-E %s %s", v.MessageType, latLonText(v.Latitude, v.Longitude))
		if v.SpeedMPH != nil {
			fmt.Printf(" %.0f MPH", *v.SpeedMPH)
		}
		if v.Course != nil {
			fmt.Printf(" course %.0f", *v.Course)
		}
		if v.Device != "" {
			fmt.Printf(" [%s]", v.Device)
		}
		fmt.Printf("%s\n", commentSuffix(v.Comment))
	case *aprsdec.Weather:
		fmt.Printf("weather%s\n", weatherText(v))
	case *aprsdec.Object:
		state := "killed"
		if v.Alive {
			state = "live"
		}
		fmt.Printf("object %q (%s)%s\n", v.Name, state, positionSuffix(v.Position))
	case *aprsdec.Item:
		state := "killed"
		if v.Alive {
			state = "live"
		}
		fmt.Printf("item %q (%s)%s\n", v.Name, state, positionSuffix(v.Position))
	case *aprsdec.Telemetry:
		if v.Raw != "" {
			fmt.Printf("telemetry (unparsed) %q\n", v.Raw)
			return
		}
		fmt.Printf("telemetry #%d %s\n", v.Seq, telemetryText(v))
	case *aprsdec.TelemetryParams:
		fmt.Printf("telemetry names for %s: %s\n", v.Addressee, strings.Join(v.Names, ", "))
	case *aprsdec.TelemetryUnits:
		fmt.Printf("telemetry units for %s: %s\n", v.Addressee, strings.Join(v.Units, ", "))
	case *aprsdec.TelemetryEqns:
		fmt.Printf("telemetry equations for %s: %v\n", v.Addressee, v.Coefficients)
	case *aprsdec.TelemetryBits:
		fmt.Printf("telemetry bit sense for %s, project %q\n", v.Addressee, v.Project)
	case *aprsdec.Message:
		fmt.Printf("message to %s: %s%s\n", v.Addressee, v.Text, messageSuffix(v))
	case *aprsdec.Status:
		fmt.Printf("status%s %s\n", timestampSuffix(v.Timestamp), v.Text)
	case *aprsdec.Query:
		fmt.Printf("query ?%s?\n", v.Type)
	case *aprsdec.Capabilities:
		fmt.Printf("capabilities: %d entries\n", len(v.Entries))
	case *aprsdec.PHG:
		fmt.Printf("PHG %dW height %dft gain %ddB %s\n", v.PowerWatts, v.HeightFeet, v.GainDB, v.Directivity)
	case *aprsdec.DFS:
		fmt.Printf("DFS %ddB height %dft gain %ddB %s\n", v.StrengthDB, v.HeightFeet, v.GainDB, v.Directivity)
	case *aprsdec.UserDefined:
		fmt.Printf("user-defined packet, %d data bytes\n", len(v.Data))
	case *aprsdec.ThirdParty:
		fmt.Printf("third-party traffic from %s\n", v.Inner.Src)
	case *aprsdec.Malformed:
		log.Warn("malformed packet", "reason", v.Reason)
		fmt.Printf("malformed: %s\n", v.Reason)
	case *aprsdec.Empty:
		fmt.Println("empty information field")
	default:
		fmt.Println("unrecognized information field")
	}
}

func timestampSuffix(ts *aprsdec.PartialTimestamp) string {
	if ts == nil {
		return ""
	}
	return " at " + ts.ResolveIn(time.Now().UTC()).Format("2006-01-02 15:04:05 MST")
}

func commentSuffix(comment string) string {
	if comment == "" {
		return ""
	}
	return fmt.Sprintf(" %q", comment)
}

func latLonText(lat, lon *aprsdec.Coordinate) string {
	if lat == nil || lon == nil {
		return "(position withheld)"
	}
	return fmt.Sprintf("%.4f %.4f", lat.Degrees, lon.Degrees)
}

func positionSuffix(pos *aprsdec.Position) string {
	if pos == nil {
		return ""
	}
	return " at " + latLonText(pos.Latitude, pos.Longitude)
}

func messageSuffix(m *aprsdec.Message) string {
	if m.Number == "" {
		return ""
	}
	return " {" + m.Number + "}"
}

func weatherText(w *aprsdec.Weather) string {
	var b strings.Builder
	if w.Position != nil {
		fmt.Fprintf(&b, " %s", latLonText(w.Position.Latitude, w.Position.Longitude))
	}
	if w.WindDirection != nil {
		fmt.Fprintf(&b, " wind %d°", *w.WindDirection)
	}
	if w.WindSpeed != nil {
		fmt.Fprintf(&b, " %.0f MPH", *w.WindSpeed)
	}
	if w.Gust != nil {
		fmt.Fprintf(&b, " gusting %.0f", *w.Gust)
	}
	if w.Temperature != nil {
		fmt.Fprintf(&b, ", %.0f F", *w.Temperature)
	}
	if w.Humidity != nil {
		fmt.Fprintf(&b, ", humidity %d%%", *w.Humidity)
	}
	if w.Pressure != nil {
		fmt.Fprintf(&b, ", %.1f mbar", *w.Pressure)
	}
	return b.String()
}

func telemetryText(t *aprsdec.Telemetry) string {
	vals := make([]string, 0, len(t.Analog))
	for _, a := range t.Analog {
		if a == nil {
			vals = append(vals, "-")
		} else {
			vals = append(vals, fmt.Sprintf("%g", *a))
		}
	}
	bits := make([]byte, 0, len(t.Digital))
	for _, d := range t.Digital {
		if d == nil {
			bits = append(bits, '-')
		} else {
			bits = append(bits, byte('0'+*d))
		}
	}
	return strings.Join(vals, " ") + " [" + string(bits) + "]"
}

// payloadLatLon pulls a decimal position out of any payload that carries
// one.
func payloadLatLon(p aprsdec.Payload) (float64, float64, bool) {
	var lat, lon *aprsdec.Coordinate
	switch v := p.(type) {
	case *aprsdec.Position:
		lat, lon = v.Latitude, v.Longitude
	case *aprsdec.MicE:
		lat, lon = v.Latitude, v.Longitude
	case *aprsdec.Weather:
		if v.Position != nil {
			lat, lon = v.Position.Latitude, v.Position.Longitude
		}
	case *aprsdec.Object:
		if v.Position != nil {
			lat, lon = v.Position.Latitude, v.Position.Longitude
		}
	case *aprsdec.Item:
		if v.Position != nil {
			lat, lon = v.Position.Latitude, v.Position.Longitude
		}
	case *aprsdec.ThirdParty:
		return payloadLatLon(v.Payload)
	}
	if lat == nil || lon == nil {
		return 0, 0, false
	}
	return lat.Degrees, lon.Degrees, true
}

func printUTM(lat, lon float64) {
	latlng := aprsdec.LatLng(
		aprsdec.Coordinate{Degrees: lat},
		aprsdec.Coordinate{Degrees: lon},
	)

	utmCoord, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if err != nil {
		log.Warn("UTM conversion failed", "err", err)
	} else {
		hemi := 'N'
		if utmCoord.Hemisphere == coordconv.HemisphereSouth {
			hemi = 'S'
		}
		fmt.Printf("  UTM zone %d%c easting %.0f northing %.0f\n",
			utmCoord.Zone, hemi, utmCoord.Easting, utmCoord.Northing)
	}

	mgrsCoord, err := coordconv.DefaultMGRSConverter.ConvertFromGeodetic(latlng, 5)
	if err != nil {
		log.Warn("MGRS conversion failed", "err", err)
	} else {
		fmt.Printf("  MGRS %s\n", mgrsCoord)
	}
}

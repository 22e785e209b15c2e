// Package aprsdec decodes APRS information fields into structured data.
//
// The information field is the payload portion of an AX.25 frame.  APRS
// crams roughly a dozen overlapping micro-formats into it, distinguished
// by a single leading character.  Classify picks the format and Decode
// routes to the matching sub-decoder.
//
// Reference:  APRS Protocol Specification 1.0.1 ( http://www.aprs.org/doc/APRS101.PDF )
// plus the addenda at http://www.aprs.org/aprs11.html and aprs12.html.
package aprsdec

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// DataType identifies which micro-format an information field carries.
type DataType int

const (
	TypeEmpty DataType = iota
	TypeUnknown
	TypePosition
	TypeMicE
	TypeWeather
	TypeObject
	TypeItem
	TypeTelemetry
	TypePHG
	TypeDFS
	TypeStatus
	TypeMessage
	TypeQuery
	TypeCapabilities
	TypeUserDefined
	TypeThirdParty
)

var dataTypeNames = map[DataType]string{
	TypeEmpty:        "Empty",
	TypeUnknown:      "Unknown",
	TypePosition:     "Position",
	TypeMicE:         "MIC-E",
	TypeWeather:      "Weather Report",
	TypeObject:       "Object",
	TypeItem:         "Item",
	TypeTelemetry:    "Telemetry",
	TypePHG:          "Station Power-Height-Gain",
	TypeDFS:          "DF Signal Strength",
	TypeStatus:       "Status Report",
	TypeMessage:      "APRS Message",
	TypeQuery:        "General Query",
	TypeCapabilities: "Station Capabilities",
	TypeUserDefined:  "User-Defined Data",
	TypeThirdParty:   "Third Party Traffic",
}

func (t DataType) String() string {
	if s, ok := dataTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// Payload is the result of decoding one information field.  It is a closed
// union; the concrete type identifies the format.  Every value is created
// fresh per decode call and never mutated afterwards.
type Payload interface {
	payload()
}

// Coordinate is a signed decimal-degree value plus the position ambiguity
// level (0-4) declared by the encoding.  Ambiguity is metadata: the stored
// value is never truncated to match it.
type Coordinate struct {
	Degrees   float64
	Ambiguity int
}

// LatLng pairs a latitude and longitude Coordinate as an s2.LatLng, the
// interchange type for the UTM/MGRS converters.
func LatLng(lat, lon Coordinate) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(lat.Degrees * (math.Pi / 180)),
		Lng: s1.Angle(lon.Degrees * (math.Pi / 180)),
	}
}

// GPSFixType is from bits 0-1 of the compression type byte.
type GPSFixType int

const (
	FixOther GPSFixType = iota
	FixGLLGGA
	FixRMC
	FixUnknown
)

// CompressionType is the decoded compression type byte of a compressed
// position report.
type CompressionType struct {
	GPSFix     GPSFixType
	Resolution int // 0-4
	OldData    bool
	Messaging  bool
}

// Extension holds the optional items that can be buried in a comment:
// course/speed, altitude, and the !DAO! datum byte.  Each is independently
// present or absent.
type Extension struct {
	Course     *float64 // degrees, 0-360
	SpeedMPH   *float64
	Altitude   *float64 // feet, signed
	DAODatum   byte     // 0 if absent; upper-cased datum byte otherwise
	RangeMiles *float64
}

// CommentTelemetry is base 91 compressed telemetry found between | markers
// in a comment: a sequence number followed by up to 8 values.  A slot is
// nil when its two bytes were not valid base 91 digits.
type CommentTelemetry struct {
	Seq    *int
	Values []*int
}

// Position is an uncompressed or compressed position report.
type Position struct {
	Latitude    *Coordinate
	Longitude   *Coordinate
	SymbolTable byte
	SymbolCode  byte
	Compressed  bool
	Compression *CompressionType // compressed form only
	Messaging   bool             // '=' or '@' data type indicator
	Timestamp   *PartialTimestamp
	PHG         *PHG // 7 byte data extension after the position
	DFS         *DFS
	Telemetry   *CommentTelemetry
	Extension
	Comment string
}

// MicEMessageKind tells which encoding carried the Mic-E message bits.
type MicEMessageKind int

const (
	MicEMessageNone MicEMessageKind = iota
	MicEMessageStandard
	MicEMessageCustom
)

// MicEDigitKind tags how one destination byte encoded its digit.
type MicEDigitKind int

const (
	MicEDigitPlain MicEDigitKind = iota
	MicEDigitCustom
	MicEDigitStandard
	MicEDigitSpace // K, L, Z ambiguity filler
)

// MicEDigit is one decoded byte of a Mic-E destination callsign.
type MicEDigit struct {
	Value      int // 0-9
	MessageBit int // 0 or 1
	Kind       MicEDigitKind
}

// MicE is a position report smuggled through the destination callsign and
// a dense binary information field.
type MicE struct {
	Latitude    *Coordinate
	Longitude   *Coordinate
	SymbolTable byte
	SymbolCode  byte
	SpeedMPH    *float64
	Course      *float64
	Altitude    *float64 // feet
	Digits      [6]MicEDigit
	MessageCode int // 3-bit value from the first three destination bytes
	MessageKind MicEMessageKind
	MessageType string // display string, e.g. "En Route" or "Custom-2"
	Device      string // vendor/model from comment prefix/suffix
	Telemetry   *CommentTelemetry
	Extension
	Comment string
}

// Weather is a weather report, either positionless ('_') or attached to a
// position/object report whose symbol code is '_'.  Field units follow the
// wire protocol: speeds in knots as sent, rain in inches, pressure in
// tenths-of-hPa divided out to hPa.
type Weather struct {
	Position      *Position
	Timestamp     *PartialTimestamp
	WindDirection *int
	WindSpeed     *float64
	Gust          *float64
	Temperature   *float64 // degrees F
	Rain1h        *float64 // inches
	Rain24h       *float64
	RainMidnight  *float64
	Humidity      *int     // percent; wire value 00 means 100
	Pressure      *float64 // hPa
	Luminosity    *int     // watts per square meter
	Snow          *float64 // inches in 24 hours
	Software      string   // leftover text, typically software/station type
}

// Object is a report about something other than the sending station.
type Object struct {
	Name      string // trimmed for display
	RawName   string // the 9 byte field exactly as sent
	Alive     bool
	Timestamp *PartialTimestamp
	Position  *Position
	Weather   *Weather // symbol code '_'
}

// Item is like an Object but with a variable length name and no timestamp.
type Item struct {
	Name     string
	Alive    bool
	Position *Position
}

// Telemetry is a T#seq data report with up to 5 analog and 8 digital values.
type Telemetry struct {
	Seq     int
	Analog  []*float64
	Digital []*int
	Comment string
	Raw     string // set instead of the above when the sequence is unparseable
}

// TelemetryParams names the telemetry channels of the addressed station.
type TelemetryParams struct {
	Addressee string
	Names     []string
}

// TelemetryUnits labels the telemetry channels of the addressed station.
type TelemetryUnits struct {
	Addressee string
	Units     []string
}

// TelemetryEqns carries a,b,c scaling coefficients for the analog channels.
type TelemetryEqns struct {
	Addressee    string
	Coefficients [][3]float64
}

// TelemetryBits carries the digital channel bit sense and the project name.
type TelemetryBits struct {
	Addressee string
	Sense     []bool
	Project   string
}

// PHG is a transmitter power / antenna height / gain / directivity report.
type PHG struct {
	PowerWatts     int
	HeightFeet     int
	GainDB         int
	Directivity    string // "omni", "NE", "E", ...
	DirectivityDeg *int   // nil for omni or the undefined digit 9
}

// DFS is a direction-finding signal strength report.
type DFS struct {
	StrengthDB     int // dB above S0
	HeightFeet     int
	GainDB         int
	Directivity    string
	DirectivityDeg *int
}

// MessageKind distinguishes the several things that hide behind the ':'
// data type indicator.
type MessageKind int

const (
	MessagePlain MessageKind = iota
	MessageAck
	MessageRej
	MessageBulletin
	MessageAnnouncement
	MessageGroupBulletin
	MessageNWS
)

// Message is a text message, bulletin, or ack/rej addressed to a station.
type Message struct {
	Kind      MessageKind
	Addressee string
	Text      string
	Number    string // optional {NNNNN or {mm} message number
	ReplyAck  string // aa of the new style {mm}aa form
	GroupName string // group bulletin only
}

// Query is a general (?APRS?) or directed (:CALL:?APRS?) query.
type Query struct {
	Type      string
	Addressee string // directed queries only
	Latitude  *float64
	Longitude *float64
	Radius    *float64 // miles
}

// Capability is one TOKEN or TOKEN=VALUE pair from a capabilities report.
type Capability struct {
	Token string
	Value string
}

// Capabilities is a '<' station capabilities report.
type Capabilities struct {
	Entries []Capability
}

// Status is a '>' status report.
type Status struct {
	Timestamp   *PartialTimestamp
	Maidenhead  string
	SymbolTable byte
	SymbolCode  byte
	Text        string
	BeamHeading *int
	ERPWatts    *int
}

// UserDefined is a '{' experimental data field.
type UserDefined struct {
	UserID       byte
	DataType     byte
	Data         string
	Experimental bool // '{{' reserved experimental prefix
}

// ThirdParty is a '}' tunneled packet.  Payload is the decoded inner
// information field; Inner carries the re-parsed header.
type ThirdParty struct {
	Inner   *Packet
	Payload Payload
}

// Empty is a zero-length information field.
type Empty struct{}

// Unknown is an information field whose leading byte matches no known format.
type Unknown struct {
	Raw []byte
}

// Malformed is returned when a field's fixed structure is violated.  It is
// data, not an error: decoding never panics and never returns a Go error.
type Malformed struct {
	Reason string
	Raw    []byte
}

func (*Position) payload()        {}
func (*MicE) payload()            {}
func (*Weather) payload()         {}
func (*Object) payload()          {}
func (*Item) payload()            {}
func (*Telemetry) payload()       {}
func (*TelemetryParams) payload() {}
func (*TelemetryUnits) payload()  {}
func (*TelemetryEqns) payload()   {}
func (*TelemetryBits) payload()   {}
func (*PHG) payload()             {}
func (*DFS) payload()             {}
func (*Status) payload()          {}
func (*Message) payload()         {}
func (*Query) payload()           {}
func (*Capabilities) payload()    {}
func (*UserDefined) payload()     {}
func (*ThirdParty) payload()      {}
func (*Empty) payload()           {}
func (*Unknown) payload()         {}
func (*Malformed) payload()       {}

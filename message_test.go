package aprsdec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeMessage tests plain addressed messages.
func TestDecodeMessage(t *testing.T) {
	tests := []struct {
		name string
		info string
		want Message
	}{
		{
			"plain text",
			":WB2OSZ-7 :Happy Birthday",
			Message{Kind: MessagePlain, Addressee: "WB2OSZ-7", Text: "Happy Birthday"},
		},
		{
			"with message number",
			":WB2OSZ-7 :Happy Birthday{001",
			Message{Kind: MessagePlain, Addressee: "WB2OSZ-7", Text: "Happy Birthday", Number: "001"},
		},
		{
			"reply-ack form",
			":WB2OSZ-7 :Happy Birthday{AB}CD",
			Message{Kind: MessagePlain, Addressee: "WB2OSZ-7", Text: "Happy Birthday", Number: "AB", ReplyAck: "CD"},
		},
		{
			"ack",
			":KB1ABC   :ack003",
			Message{Kind: MessageAck, Addressee: "KB1ABC", Number: "003"},
		},
		{
			"rej",
			":KB1ABC   :rej003",
			Message{Kind: MessageRej, Addressee: "KB1ABC", Number: "003"},
		},
		{
			"word starting with ack stays text",
			":KB1ABC   :acknowledge the plan",
			Message{Kind: MessagePlain, Addressee: "KB1ABC", Text: "acknowledge the plan"},
		},
		{
			"numbered bulletin",
			":BLN3     :Snow expected in Tampa RSN",
			Message{Kind: MessageBulletin, Addressee: "BLN3", Number: "3", Text: "Snow expected in Tampa RSN"},
		},
		{
			"group bulletin",
			":BLN4WX   :Stand by your snowplows",
			Message{Kind: MessageGroupBulletin, Addressee: "BLN4WX", Number: "4", GroupName: "WX", Text: "Stand by your snowplows"},
		},
		{
			"announcement",
			":BLNQ     :Mt St Helen digi will be QRT this weekend",
			Message{Kind: MessageAnnouncement, Addressee: "BLNQ", Number: "Q", Text: "Mt St Helen digi will be QRT this weekend"},
		},
		{
			"NWS product",
			":NWS-WARN :120145z,Winter_Storm",
			Message{Kind: MessageNWS, Addressee: "NWS-WARN", Text: "120145z,Winter_Storm"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DecodeInfo("APRS", []byte(tt.info))
			msg, ok := p.(*Message)
			require.True(t, ok, "expected a message payload, got %T", p)
			assert.Equal(t, &tt.want, msg)
		})
	}
}

// TestMalformedMessage tests the separator requirement.
func TestMalformedMessage(t *testing.T) {
	p := DecodeInfo("APRS", []byte(":TOOSHORT"))
	assert.IsType(t, &Malformed{}, p)

	p = DecodeInfo("APRS", []byte(":WB2OSZ-7 no separator"))
	assert.IsType(t, &Malformed{}, p)
}

// TestDirectedQuery tests queries carried inside messages.
func TestDirectedQuery(t *testing.T) {
	p := DecodeInfo("APRS", []byte(":N0CALL   :?APRSD"))
	q, ok := p.(*Query)
	require.True(t, ok, "expected a query payload, got %T", p)
	assert.Equal(t, "N0CALL", q.Addressee)
	assert.Equal(t, "APRSD", q.Type)
}

// TestGeneralQuery tests the '?' data type.
func TestGeneralQuery(t *testing.T) {
	p := DecodeInfo("APRS", []byte("?APRS?"))
	q, ok := p.(*Query)
	require.True(t, ok, "expected a query payload, got %T", p)
	assert.Equal(t, "APRS", q.Type)
	assert.Nil(t, q.Latitude)

	p = DecodeInfo("APRS", []byte("?APRS? 34.02,-117.15,0200"))
	q, ok = p.(*Query)
	require.True(t, ok)
	require.NotNil(t, q.Latitude)
	assert.InDelta(t, 34.02, *q.Latitude, 0.0001)
	require.NotNil(t, q.Longitude)
	assert.InDelta(t, -117.15, *q.Longitude, 0.0001)
	require.NotNil(t, q.Radius)
	assert.InDelta(t, 200, *q.Radius, 0.0001)
}

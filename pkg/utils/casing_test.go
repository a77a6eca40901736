package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysToCamel_Nested(t *testing.T) {
	in := map[string]any{
		"health_status": "Sick",
		"cage": map[string]any{
			"min_threshold": 3,
		},
		"records": []any{
			map[string]any{"check_in": "09:00"},
		},
	}

	out := KeysToCamel(in).(map[string]any)

	assert.Equal(t, "Sick", out["healthStatus"])
	assert.Equal(t, 3, out["cage"].(map[string]any)["minThreshold"])
	assert.Equal(t, "09:00", out["records"].([]any)[0].(map[string]any)["checkIn"])
}

func TestDecodeBody_AcceptsEitherCasing(t *testing.T) {
	var dst struct {
		TicketID    string `json:"ticketId"`
		VisitorName string `json:"visitorName"`
	}

	body, err := DecodeBody(strings.NewReader(`{"ticket_id":"t-1","visitorName":"Eve"}`), &dst)

	require.NoError(t, err)
	assert.Equal(t, "t-1", dst.TicketID)
	assert.Equal(t, "Eve", dst.VisitorName)
	assert.Equal(t, "t-1", body["ticketId"])
}

func TestDecodeBody_RejectsNonObject(t *testing.T) {
	var dst struct{}

	_, err := DecodeBody(strings.NewReader(`[1,2]`), &dst)

	assert.Error(t, err)
}

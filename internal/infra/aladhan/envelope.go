package aladhan

import (
	"bytes"
	"encoding/json"
)

// The AlAdhan API wraps every payload as {"code":..,"status":..,"data":..}.
// A missing, null, or empty data field is not an error: the whole envelope
// is returned instead so the caller always receives a non-empty document.

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Unwrap returns the envelope's data payload, or raw itself when data is
// absent, null, or an empty object/array.
func Unwrap(raw []byte) []byte {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	if emptyValue(env.Data) {
		return raw
	}
	return env.Data
}

// UnwrapTimings descends into data.timings, used by the daily prayer-times
// endpoints. Falls back to the whole envelope when either level is empty.
func UnwrapTimings(raw []byte) []byte {
	var env struct {
		Data struct {
			Timings json.RawMessage `json:"timings"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}
	if emptyValue(env.Data.Timings) {
		return Unwrap(raw)
	}
	return env.Data.Timings
}

func emptyValue(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return true
	case bytes.Equal(trimmed, []byte("null")):
		return true
	case bytes.Equal(trimmed, []byte("{}")):
		return true
	case bytes.Equal(trimmed, []byte("[]")):
		return true
	}
	return false
}

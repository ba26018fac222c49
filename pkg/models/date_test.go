package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain date", `"2024-06-14"`, "2024-06-14", false},
		{"full timestamp keeps the day", `"2024-06-14T18:30:00Z"`, "2024-06-14", false},
		{"timestamp with offset", `"2024-06-14T23:30:00+02:00"`, "2024-06-14", false},
		{"empty string", `""`, "", true},
		{"blank string", `"  "`, "", true},
		{"trailing garbage", `"2024-06-14garbage"`, "", true},
		{"impossible day", `"2024-02-30"`, "", true},
		{"number", `20240614`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				var typeErr *json.UnmarshalTypeError
				assert.ErrorAs(t, err, &typeErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDateJSONFieldErrors(t *testing.T) {
	var payload struct {
		Date *Date `json:"date"`
	}

	err := json.Unmarshal([]byte(`{"date":""}`), &payload)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "date", typeErr.Field)

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &payload))
	assert.Nil(t, payload.Date)
}

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2024, time.June, 14, 18, 30, 0, 0, time.UTC))

	out, err := json.Marshal(map[string]Date{"date": d})

	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-06-14"}`, string(out))
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    string
		wantErr bool
	}{
		{"time", time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC), "2024-06-14", false},
		{"bytes", []byte("2024-06-14"), "2024-06-14", false},
		{"string", "2024-06-14", "2024-06-14", false},
		{"timestamp string", "2024-06-14T00:00:00Z", "2024-06-14", false},
		{"bad string", "14/06/2024", "", true},
		{"unsupported type", int64(20240614), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDateValue(t *testing.T) {
	d, err := ParseDate("2024-06-14")
	require.NoError(t, err)

	v, err := d.Value()

	require.NoError(t, err)
	assert.Equal(t, "2024-06-14", v)
}

package timecode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "zero", seconds: 0, want: "0:00"},
		{name: "negative", seconds: -5, want: "0:00"},
		{name: "nan", seconds: math.NaN(), want: "0:00"},
		{name: "positive infinity", seconds: math.Inf(1), want: "0:00"},
		{name: "under a minute", seconds: 42.5, want: "0:42"},
		{name: "over a minute", seconds: 65, want: "1:05"},
		{name: "exact minute", seconds: 60, want: "1:00"},
		{name: "long match", seconds: 5400, want: "90:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.seconds))
		})
	}
}

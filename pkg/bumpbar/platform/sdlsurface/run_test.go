package sdlsurface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInBar(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{name: "top edge of the screen", y: 0, want: false},
		{name: "just above the bar", y: 367.5, want: false},
		{name: "bar top", y: 368, want: true},
		{name: "bottom of the bar", y: 479, want: true},
		{name: "no vertical axis", y: math.NaN(), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inBar(tt.y, 368))
		})
	}
}

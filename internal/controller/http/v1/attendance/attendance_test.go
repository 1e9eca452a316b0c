package attendance

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 40.730610, lng1: -73.935242,
			lat2: 40.730610, lng2: -73.935242,
			want: 0, tolerance: 0.001,
		},
		{
			name: "one degree of latitude",
			lat1: 40, lng1: -73,
			lat2: 41, lng2: -73,
			want: 111195, tolerance: 100,
		},
		{
			name: "across the street",
			lat1: 40.730610, lng1: -73.935242,
			lat2: 40.730700, lng2: -73.935242,
			want: 10, tolerance: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Distance() = %v, want %v (±%v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestParseLocation(t *testing.T) {
	lat, lng, err := ParseLocation("40.730610, -73.935242")
	if err != nil {
		t.Fatalf("ParseLocation() error = %v", err)
	}
	if lat != 40.730610 || lng != -73.935242 {
		t.Errorf("ParseLocation() = %v, %v", lat, lng)
	}

	for _, bad := range []string{"", "40.7", "a,b", "1,2,3"} {
		if _, _, err := ParseLocation(bad); err == nil {
			t.Errorf("ParseLocation(%q) expected error", bad)
		}
	}
}

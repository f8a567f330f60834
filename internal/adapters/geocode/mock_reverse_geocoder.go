package geocode

import (
	"context"
	"fmt"

	"visit-route-service/internal/domain"
)

// MockReverseGeocoder resolves fixed coordinate-to-address pairs for tests.
type MockReverseGeocoder struct {
	m   map[string]string
	Err error
}

func NewMockReverseGeocoder() *MockReverseGeocoder {
	return &MockReverseGeocoder{m: make(map[string]string)}
}

func (g *MockReverseGeocoder) Add(c domain.Coordinates, address string) {
	g.m[key(c)] = address
}

func (g *MockReverseGeocoder) ReverseGeocode(ctx context.Context, c domain.Coordinates) (string, error) {
	if g.Err != nil {
		return "", g.Err
	}

	addr, ok := g.m[key(c)]
	if !ok {
		return "", fmt.Errorf("no address for %s", c)
	}
	return addr, nil
}

func key(c domain.Coordinates) string {
	return fmt.Sprintf("%.5f|%.5f", c.Lat, c.Lng)
}

package domain

import (
	"fmt"
	"strings"
)

// City identifies a bikeshare system with its own trip dataset.
type City string

// Supported cities.
const (
	CityChicago    City = "chicago"
	CityNewYork    City = "new york"
	CityWashington City = "washington"
)

// AllCities returns the supported cities in display order.
func AllCities() []City {
	return []City{CityChicago, CityNewYork, CityWashington}
}

// IsValid returns true if the city is supported.
func (c City) IsValid() bool {
	switch c {
	case CityChicago, CityNewYork, CityWashington:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c City) String() string {
	return string(c)
}

// Key returns the config-safe key for the city (spaces become underscores).
func (c City) Key() string {
	return strings.ReplaceAll(string(c), " ", "_")
}

// DefaultFile returns the dataset file name shipped for the city.
func (c City) DefaultFile() string {
	switch c {
	case CityChicago:
		return "chicago.csv"
	case CityNewYork:
		return "new_york_city.csv"
	case CityWashington:
		return "washington.csv"
	default:
		return ""
	}
}

// ParseCity parses a city name, ignoring case and surrounding whitespace.
func ParseCity(s string) (City, error) {
	c := City(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrUnknownCity, s)
	}
	return c, nil
}

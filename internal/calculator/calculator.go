// Package calculator prices custom-cut lumber orders.
package calculator

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrMissingDimensions = errors.New("all dimensions must be filled")
	ErrInvalidDimensions = errors.New("dimensions must not be negative")
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrInvalidDistance   = errors.New("delivery distance must not be negative")
	ErrUnknownWoodType   = errors.New("unknown wood type")
	ErrUnknownTreatment  = errors.New("unknown treatment")
)

const (
	DefaultWoodType  = "pine"
	DefaultTreatment = "standard"

	// DeliveryBaseFee and DeliveryPerKm are in roubles
	DeliveryBaseFee = 1500.0
	DeliveryPerKm   = 45.0
	// InstallationRate is the share of the material cost charged for installation
	InstallationRate = 0.20

	mm3PerM3 = 1_000_000_000
)

// woodPrices are roubles per cubic metre
var woodPrices = map[string]float64{
	"pine":     12000,
	"spruce":   11500,
	"oak":      45000,
	"beech":    38000,
	"ash":      40000,
	"birch":    25000,
	"alder":    22000,
	"teak":     85000,
	"mahogany": 78000,
}

var treatmentMultipliers = map[string]float64{
	"standard":      1,
	"planed":        1.25,
	"dried":         1.35,
	"tongue_groove": 1.5,
}

// Dimensions of a single piece in millimetres
type Dimensions struct {
	Length    int `json:"length"`
	Width     int `json:"width"`
	Thickness int `json:"thickness"`
}

// Request describes one calculation. Either Dimensions or Volume (m³ per
// piece) must be given; Dimensions win when both are set.
type Request struct {
	Dimensions   *Dimensions `json:"dimensions,omitempty"`
	Volume       float64     `json:"volume,omitempty"`
	WoodType     string      `json:"woodType"`
	Treatment    string      `json:"treatment"`
	Quantity     int         `json:"quantity"`
	DistanceKm   float64     `json:"distanceKm"`
	Installation bool        `json:"installation"`
}

// Result is the price breakdown of a calculation
type Result struct {
	Volume       float64 `json:"volume"`
	TotalVolume  float64 `json:"totalVolume"`
	Material     float64 `json:"material"`
	Delivery     float64 `json:"delivery"`
	Installation float64 `json:"installation"`
	Total        float64 `json:"total"`
}

// WoodTypes returns the priced wood species with their per-m³ price
func WoodTypes() map[string]float64 {
	out := make(map[string]float64, len(woodPrices))
	for k, v := range woodPrices {
		out[k] = v
	}
	return out
}

// Treatments returns the surface treatments with their price multiplier
func Treatments() map[string]float64 {
	out := make(map[string]float64, len(treatmentMultipliers))
	for k, v := range treatmentMultipliers {
		out[k] = v
	}
	return out
}

// Normalize fills defaults and validates the request
func (r Request) Normalize() (Request, error) {
	if r.WoodType == "" {
		r.WoodType = DefaultWoodType
	}
	if r.Treatment == "" {
		r.Treatment = DefaultTreatment
	}
	if _, ok := woodPrices[r.WoodType]; !ok {
		return r, fmt.Errorf("%w: %q", ErrUnknownWoodType, r.WoodType)
	}
	if _, ok := treatmentMultipliers[r.Treatment]; !ok {
		return r, fmt.Errorf("%w: %q", ErrUnknownTreatment, r.Treatment)
	}

	if r.Quantity < 0 {
		return r, ErrInvalidQuantity
	}
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	if r.DistanceKm < 0 {
		return r, ErrInvalidDistance
	}

	if d := r.Dimensions; d != nil {
		if d.Length < 0 || d.Width < 0 || d.Thickness < 0 {
			return r, ErrInvalidDimensions
		}
		if d.Length == 0 || d.Width == 0 || d.Thickness == 0 {
			return r, ErrMissingDimensions
		}
		return r, nil
	}

	if r.Volume < 0 {
		return r, ErrInvalidDimensions
	}
	if r.Volume == 0 {
		return r, ErrMissingDimensions
	}
	return r, nil
}

// Calculate prices a request
func Calculate(req Request) (Result, error) {
	req, err := req.Normalize()
	if err != nil {
		return Result{}, err
	}

	volume := req.Volume
	if d := req.Dimensions; d != nil {
		volume = float64(d.Length) * float64(d.Width) * float64(d.Thickness) / mm3PerM3
	}

	totalVolume := volume * float64(req.Quantity)
	material := woodPrices[req.WoodType] * totalVolume * treatmentMultipliers[req.Treatment]

	var delivery float64
	if req.DistanceKm > 0 {
		delivery = DeliveryBaseFee + DeliveryPerKm*req.DistanceKm
	}

	var installation float64
	if req.Installation {
		installation = material * InstallationRate
	}

	return Result{
		Volume:       volume,
		TotalVolume:  totalVolume,
		Material:     round2(material),
		Delivery:     round2(delivery),
		Installation: round2(installation),
		Total:        round2(material + delivery + installation),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

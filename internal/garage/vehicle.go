// Package garage holds the shopper's session: budget, must-have toggles,
// the static vehicle catalog, the swipe decisions made so far, and the
// derived deck of vehicles still eligible for swiping.
package garage

import (
	"slices"

	"github.com/dmitrijs2005/wheel/internal/common"
)

// VehicleID identifies a catalog listing.
type VehicleID int64

// Feature labels used in catalog records.
const (
	LabelHeatedSeats  = "Heated Seats"
	LabelPushToStart  = "Push to Start"
	LabelAppleCarPlay = "Apple CarPlay"
	LabelAWD          = "AWD"
)

// FeatureVocabulary lists every label a vehicle may carry.
var FeatureVocabulary = []string{LabelHeatedSeats, LabelPushToStart, LabelAppleCarPlay, LabelAWD}

// IsKnownFeature reports whether label belongs to FeatureVocabulary.
func IsKnownFeature(label string) bool {
	return slices.Contains(FeatureVocabulary, label)
}

// Vehicle is a catalog listing. Price is the sticker price; the store
// compares Price/72 against the monthly budget.
type Vehicle struct {
	ID          VehicleID `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Image       string    `json:"img"`
}

// HasFeature reports whether the listing carries label (exact match).
func (v Vehicle) HasFeature(label string) bool {
	return slices.Contains(v.Features, label)
}

// MonthlyPayment estimates the monthly payment for the listing.
func (v Vehicle) MonthlyPayment() float64 {
	return v.Price / common.MonthlyPaymentPeriods
}

// Clone returns a copy that shares no memory with v.
func (v Vehicle) Clone() Vehicle {
	v.Features = slices.Clone(v.Features)
	return v
}

func cloneVehicles(vs []Vehicle) []Vehicle {
	out := make([]Vehicle, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}
	return out
}

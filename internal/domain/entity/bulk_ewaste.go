package entity

import (
	"time"
)

const (
	BulkStatusAvailable = "available"
	BulkStatusSold      = "sold"
	// Reserved is a valid state but no API operation transitions into or out
	// of it; it is only ever set through manual store edits.
	BulkStatusReserved = "reserved"
)

const MinBulkWeightKg = 0.1

var BulkCategories = []string{
	"Electronics",
	"Appliances",
	"Computers",
	"Mobile Devices",
	"Batteries",
	"Mixed",
	"Other",
}

var BulkConditions = []string{"working", "not working", "damaged", "mixed"}

// BulkListing is a weighed lot posted by a collector and purchasable by an
// organization. TotalPrice is always derived from WeightInKg and PricePerKg;
// it is recomputed on every write and nil whenever PricePerKg is nil.
type BulkListing struct {
	ID          string   `json:"id" firestore:"id"`
	CollectorID string   `json:"collector_id" firestore:"collectorId"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	Category    string   `json:"category" firestore:"category"`
	Condition   string   `json:"condition" firestore:"condition"`
	WeightInKg  float64  `json:"weight_in_kg" firestore:"weightInKg"`
	PricePerKg  *float64 `json:"price_per_kg" firestore:"pricePerKg"`
	TotalPrice  *float64 `json:"total_price" firestore:"totalPrice"`
	Location    string   `json:"location,omitempty" firestore:"location,omitempty"`
	Images      []string `json:"images" firestore:"images"`
	Status      string   `json:"status" firestore:"status"`

	SoldToID string     `json:"sold_to_id,omitempty" firestore:"soldTo,omitempty"`
	SoldAt   *time.Time `json:"sold_at,omitempty" firestore:"soldAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	// Resolved references, never persisted.
	Collector *UserSummary `json:"collector,omitempty" firestore:"-"`
	SoldTo    *UserSummary `json:"sold_to,omitempty" firestore:"-"`
}

// RecomputeTotalPrice rederives TotalPrice from the current weight and rate.
// Stale totals are never carried over; clearing PricePerKg clears the total.
func (b *BulkListing) RecomputeTotalPrice() {
	if b.PricePerKg == nil {
		b.TotalPrice = nil
		return
	}
	total := b.WeightInKg * *b.PricePerKg
	b.TotalPrice = &total
}

func ValidBulkCategory(category string) bool {
	for _, c := range BulkCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidBulkCondition(condition string) bool {
	for _, c := range BulkConditions {
		if c == condition {
			return true
		}
	}
	return false
}

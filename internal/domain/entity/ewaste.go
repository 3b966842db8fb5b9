package entity

import (
	"time"
)

const (
	EWasteStatusPending   = "pending"
	EWasteStatusCollected = "collected"
	EWasteStatusCancelled = "cancelled"
)

var EWasteCategories = []string{
	"Electronics",
	"Appliances",
	"Computers",
	"Mobile Devices",
	"Batteries",
	"Other",
}

var EWasteConditions = []string{"working", "not working", "damaged"}

// EWasteListing is an individual e-waste post made by an ordinary user and
// collectable by a collector. UserID is fixed at creation; CollectedBy and
// CollectedAt are set together, only on the pending -> collected transition.
type EWasteListing struct {
	ID          string   `json:"id" firestore:"id"`
	UserID      string   `json:"user_id" firestore:"userId"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	Category    string   `json:"category" firestore:"category"`
	Condition   string   `json:"condition" firestore:"condition"`
	Quantity    int      `json:"quantity" firestore:"quantity"`
	Price       *float64 `json:"price" firestore:"price"`
	Location    string   `json:"location,omitempty" firestore:"location,omitempty"`
	Images      []string `json:"images" firestore:"images"`
	Status      string   `json:"status" firestore:"status"`

	CollectedByID string     `json:"collected_by_id,omitempty" firestore:"collectedBy,omitempty"`
	CollectedAt   *time.Time `json:"collected_at,omitempty" firestore:"collectedAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	// Resolved references, never persisted.
	User        *UserSummary `json:"user,omitempty" firestore:"-"`
	CollectedBy *UserSummary `json:"collected_by,omitempty" firestore:"-"`
}

func ValidEWasteCategory(category string) bool {
	for _, c := range EWasteCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidEWasteCondition(condition string) bool {
	for _, c := range EWasteConditions {
		if c == condition {
			return true
		}
	}
	return false
}

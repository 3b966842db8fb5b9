package entity

import (
	"time"
)

const (
	RoleUser         = "user"
	RoleCollector    = "collector"
	RoleOrganization = "organization"
	RoleAdmin        = "admin"
)

type User struct {
	ID      string `json:"id" firestore:"id"`
	Name    string `json:"name" firestore:"name"`
	Email   string `json:"email" firestore:"email"`
	Phone   string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address string `json:"address,omitempty" firestore:"address,omitempty"`
	Role    string `json:"role" firestore:"role"`

	// Only set when Role is "organization".
	OrganizationName string `json:"organization_name,omitempty" firestore:"organizationName,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UserSummary is the resolved view of a user reference embedded in listing
// responses. Phone and Address are only filled for browsing endpoints where
// collectors need contact info.
type UserSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

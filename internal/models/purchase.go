package models

import (
	"strings"
	"time"
)

// Purchase is one recorded external transaction
type Purchase struct {
	// Item is every item label joined with ", "
	Item string `json:"item"`

	// Items lists each item label added under this transaction
	Items []string `json:"items"`

	// Price is the transaction price in currency units
	Price float64 `json:"price"`

	// Timestamp is when the transaction was first recorded, in unix ms
	Timestamp int64 `json:"timestamp"`

	// TransactionID is the idempotency key
	TransactionID string `json:"transactionId"`

	// PointsAwarded is what the first sighting credited
	PointsAwarded int `json:"pointsAwarded"`

	// Username at recording time
	Username string `json:"username"`
}

// AddItem appends a label and refreshes the joined Item field
func (p *Purchase) AddItem(label string) {
	if len(p.Items) == 0 && p.Item != "" {
		p.Items = []string{p.Item}
	}
	p.Items = append(p.Items, label)
	p.Item = strings.Join(p.Items, ", ")
}

// RecordedAt converts Timestamp to a time
func (p *Purchase) RecordedAt() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// AdminAction is an audit entry for a manual correction
type AdminAction struct {
	// ID is a generated identifier
	ID string `json:"id"`

	// Type of action, e.g. reset_purchase
	Type string `json:"type"`

	// AdminID is the Discord user who performed the action
	AdminID string `json:"adminId"`

	// Purchase affected, if any
	Purchase *Purchase `json:"purchase,omitempty"`

	// PointsRemoved by the action
	PointsRemoved int `json:"pointsRemoved"`

	// Timestamp in unix ms
	Timestamp int64 `json:"timestamp"`
}

// AdminActionResetPurchase marks a removed purchase
const AdminActionResetPurchase = "reset_purchase"

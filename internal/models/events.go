package models

// TierAchieved is published when a user's effective tier changes
type TierAchieved struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Tier     string `json:"tier"`
	Previous string `json:"previous"`
	// Message is the rendered DM, empty when no template is configured
	Message string `json:"message,omitempty"`
}

// RoleExpired is published after a temporary role has been removed
type RoleExpired struct {
	UserID   string `json:"userId"`
	RoleID   string `json:"roleId"`
	RoleName string `json:"roleName,omitempty"`
}

// PurchaseRecorded is published once per first-seen transaction
type PurchaseRecorded struct {
	UserID        string  `json:"userId"`
	Username      string  `json:"username"`
	Item          string  `json:"item"`
	Price         float64 `json:"price"`
	TransactionID string  `json:"transactionId"`
	PointsAwarded int     `json:"pointsAwarded"`
	Multiplier    float64 `json:"multiplier"`
	Points        int     `json:"points"`
}

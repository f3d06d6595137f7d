package settings

// Document names
const (
	DocTiers           = "tiers"
	DocRetention       = "retention"
	DocMultiplierEvent = "multiplier_events"
	DocTierMultipliers = "tier_multipliers"
	DocRoles           = "roles"
	DocTierMessages    = "tier_messages"
	DocCurrency        = "currency"
	DocTransfer        = "transfer"
	DocDaily           = "daily"
	DocDiscounts       = "discounts"
	DocProducts        = "products"
	DocBenefits        = "benefits"
)

// GetDocumentInput contains parameters for reading a document
type GetDocumentInput struct {
	Name string

	// Target receives the decoded document and must be a pointer
	Target any
}

// GetDocumentOutput reports whether the document existed
type GetDocumentOutput struct {
	Found bool
}

// SaveDocumentInput contains parameters for writing a document
type SaveDocumentInput struct {
	Name  string
	Value any
}

// DeleteDocumentInput contains parameters for removing a document
type DeleteDocumentInput struct {
	Name string
}

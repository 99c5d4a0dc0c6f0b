package store

// Item and claim status values. AI_APPROVED / AI_REJECTED mark verdicts that
// came from the automated review path rather than an admin.
const (
	StatusPending    = "PENDING"
	StatusApproved   = "APPROVED"
	StatusRejected   = "REJECTED"
	StatusAIApproved = "AI_APPROVED"
	StatusAIRejected = "AI_REJECTED"
)

// Item types.
const (
	TypeLost  = "LOST"
	TypeFound = "FOUND"
)

// Item is a lost or found listing. Field names match the records the front
// end writes to the database.
type Item struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	ImageURL    string `json:"imageUrl"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
	Owner       string `json:"owner"`
	HighValue   bool   `json:"highValue,omitempty"`
}

// Claim is an ownership claim on an item. Claims are created by the front
// end; this service only reviews them.
type Claim struct {
	ID                 string    `json:"id,omitempty"`
	ItemID             string    `json:"itemId"`
	ClaimedLocation    string    `json:"claimedLocation"`
	ClaimedDescription string    `json:"claimedDescription"`
	AdditionalProof    string    `json:"additionalProof"`
	Status             string    `json:"status"`
	AIReview           *AIReview `json:"aiReview,omitempty"`
}

// AIReview is the persisted automated verdict on a claim.
type AIReview struct {
	Approved   bool   `json:"approved"`
	Reason     string `json:"reason"`
	Confidence int    `json:"confidence"`
	ReviewedAt string `json:"reviewedAt"`
}

package domain

// PackageStatus enumerates the approval lifecycle of a travel package.
type PackageStatus string

const (
	PackageStatusPending  PackageStatus = "PENDING"
	PackageStatusApproved PackageStatus = "APPROVED"
	PackageStatusRejected PackageStatus = "REJECTED"
)

// TravelPackage is a tour offering published by an agent.
type TravelPackage struct {
	PackageID   int64         `json:"packageId"`
	AgentID     int64         `json:"agentId"`
	Title       string        `json:"title"`
	Destination string        `json:"destination"`
	Price       float64       `json:"price"`
	Status      PackageStatus `json:"status"`
}

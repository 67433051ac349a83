package domain

// MonthlyTrend is one point of a dashboard trend series.
type MonthlyTrend struct {
	Month     string  `json:"month"`
	Count     int64   `json:"count"`
	Customers int64   `json:"customers"`
	Amount    float64 `json:"amount"`
}

// DashboardStats aggregates platform-wide figures for the admin dashboard.
type DashboardStats struct {
	TotalRevenue     float64        `json:"totalRevenue"`
	TotalBookings    int64          `json:"totalBookings"`
	TotalCustomers   int64          `json:"totalCustomers"`
	TotalAgents      int64          `json:"totalAgents"`
	TotalPackages    int64          `json:"totalPackages"`
	PendingApprovals int64          `json:"pendingApprovals"`
	YoYData          []MonthlyTrend `json:"yoyData"`
	RevenueData      []MonthlyTrend `json:"revenueData"`
}

// AgentStats aggregates one agent's figures for the agent dashboard.
type AgentStats struct {
	TotalPackages    int64          `json:"totalPackages"`
	ActiveBookings   int64          `json:"activeBookings"`
	PendingApprovals int64          `json:"pendingApprovals"`
	TotalEarnings    float64        `json:"totalEarnings"`
	MonthlyTrend     []MonthlyTrend `json:"monthlyTrend"`
}

package dashboard

// CustomerStats summarizes a customer's booking activity.
type CustomerStats struct {
	TotalBookings    int     `json:"total_bookings"`
	UpcomingBookings int     `json:"upcoming_bookings"`
	CancelledCount   int     `json:"cancelled_count"`
	TotalSpent       float64 `json:"total_spent"`
}

// OwnerStats summarizes activity across a facility owner's venues.
type OwnerStats struct {
	VenueCount    int     `json:"venue_count"`
	CourtCount    int     `json:"court_count"`
	TotalBookings int     `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// AdminStats summarizes the whole platform.
type AdminStats struct {
	TotalUsers    int     `json:"total_users"`
	TotalVenues   int     `json:"total_venues"`
	PendingVenues int     `json:"pending_venues"`
	TotalBookings int     `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
}

package guest

// SideStats holds the counts for one side of the guest list
type SideStats struct {
	Total     int `json:"total"`
	Attending int `json:"attending"`
	Declined  int `json:"declined"`
	Pending   int `json:"pending"`
}

// Stats is a point-in-time summary of the guest list
type Stats struct {
	Total     int       `json:"total"`
	Attending int       `json:"attending"`
	Declined  int       `json:"declined"`
	Pending   int       `json:"pending"`
	Anonymous int       `json:"anonymous"`
	Bride     SideStats `json:"bride"`
	Groom     SideStats `json:"groom"`
}

func (s *SideStats) add(status RSVPStatus) {
	s.Total++
	switch status {
	case StatusAttending:
		s.Attending++
	case StatusDeclined:
		s.Declined++
	case StatusPending:
		s.Pending++
	}
}

// ComputeStats counts guests by status, by side and by the anonymous tag.
// The result does not depend on the order of guests.
func ComputeStats(guests []*Guest) Stats {
	var (
		stats Stats
		all   SideStats
	)
	for _, g := range guests {
		all.add(g.RSVPStatus)
		switch g.Side {
		case SideBride:
			stats.Bride.add(g.RSVPStatus)
		case SideGroom:
			stats.Groom.add(g.RSVPStatus)
		}
		if g.HasTag(AnonymousTag) {
			stats.Anonymous++
		}
	}
	stats.Total = all.Total
	stats.Attending = all.Attending
	stats.Declined = all.Declined
	stats.Pending = all.Pending
	return stats
}

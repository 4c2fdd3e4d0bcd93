package entity

// ReconcileReport counts the rows each repair step touched.
type ReconcileReport struct {
	FriendshipMirrorsRestored int64 `json:"friendshipMirrorsRestored"`
	MutualRequestsResolved    int64 `json:"mutualRequestsResolved"`
	StaleRequestsPurged       int64 `json:"staleRequestsPurged"`
	DeviceLinksRepaired       int64 `json:"deviceLinksRepaired"`
	MessageRefsResolved       int64 `json:"messageRefsResolved"`
}

// Total returns the number of repaired records across all steps.
func (r *ReconcileReport) Total() int64 {
	return r.FriendshipMirrorsRestored + r.MutualRequestsResolved + r.StaleRequestsPurged + r.DeviceLinksRepaired + r.MessageRefsResolved
}

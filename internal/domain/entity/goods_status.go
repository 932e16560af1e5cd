// Package entity contains the core business objects of the marketplace.
package entity

// GoodsStatus represents the moderation state of a goods listing.
type GoodsStatus string

const (
	// GoodsStatusPending is the initial state of every new listing.
	GoodsStatusPending GoodsStatus = "pending"
	// GoodsStatusApproved marks a listing cleared for public visibility.
	GoodsStatusApproved GoodsStatus = "approved"
	// GoodsStatusFlagged marks a listing held back for review.
	GoodsStatusFlagged GoodsStatus = "flagged"
	// GoodsStatusDropped marks a listing removed from sale.
	GoodsStatusDropped GoodsStatus = "dropped"
)

// goodsTransitions is the legal transition table, enforced only when strict
// moderation mode is enabled.
var goodsTransitions = map[GoodsStatus][]GoodsStatus{
	GoodsStatusPending:  {GoodsStatusApproved, GoodsStatusFlagged, GoodsStatusDropped},
	GoodsStatusApproved: {GoodsStatusFlagged, GoodsStatusDropped},
	GoodsStatusFlagged:  {GoodsStatusApproved, GoodsStatusDropped},
	GoodsStatusDropped:  {},
}

// String returns the string representation of the GoodsStatus.
func (s GoodsStatus) String() string {
	return string(s)
}

// IsValid checks if the GoodsStatus is a valid value.
func (s GoodsStatus) IsValid() bool {
	switch s {
	case GoodsStatusPending, GoodsStatusApproved, GoodsStatusFlagged, GoodsStatusDropped:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table permits moving from s
// to target.
func (s GoodsStatus) CanTransitionTo(target GoodsStatus) bool {
	for _, allowed := range goodsTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

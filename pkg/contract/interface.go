package contract

// SelfValidating is implemented by entities that can verify their own
// invariant. CheckInvariant panics with an ErrInvariant violation naming the
// first clause that does not hold.
//
//go:generate mockgen -package mockcontract -source=interface.go -destination=mock/mockcontract.go *
type SelfValidating interface {
	CheckInvariant()
}

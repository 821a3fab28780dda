package model

import "time"

// EventRecord is a normalized contract event. It is passed by value and
// must not be modified after construction.
type EventRecord struct {
	ContractAddress Address
	EventName       string
	BlockNumber     uint64
	IntraBlockID    uint64
	TransactionHash string
	Timestamp       time.Time
	Keys            []string
	Data            []string
}

// Less reports whether r sorts before other by (block number, intra-block id).
func (r EventRecord) Less(other EventRecord) bool {
	if r.BlockNumber != other.BlockNumber {
		return r.BlockNumber < other.BlockNumber
	}
	return r.IntraBlockID < other.IntraBlockID
}

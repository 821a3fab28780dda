package derisk

import (
	"errors"
	"fmt"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/Tzienom/derisk-research/pkg/safe"
)

// ToEventRecord converts an API event into a normalized record.
func ToEventRecord(e Event) (model.EventRecord, error) {
	if e.FromAddress == "" {
		return model.EventRecord{}, errors.New("event without contract address")
	}
	if e.KeyName == "" {
		return model.EventRecord{}, errors.New("event without name")
	}
	block, err := safe.Uint64(e.BlockNumber)
	if err != nil {
		return model.EventRecord{}, fmt.Errorf("block number: %w", err)
	}
	ts, err := safe.Int64(uint64(e.Timestamp))
	if err != nil {
		return model.EventRecord{}, fmt.Errorf("timestamp: %w", err)
	}

	return model.EventRecord{
		ContractAddress: model.NormalizeAddress(e.FromAddress),
		EventName:       e.KeyName,
		BlockNumber:     block,
		IntraBlockID:    uint64(e.ID),
		TransactionHash: e.TransactionHash,
		Timestamp:       time.Unix(ts, 0).UTC(),
		Keys:            append([]string(nil), e.Keys...),
		Data:            append([]string(nil), e.Data...),
	}, nil
}

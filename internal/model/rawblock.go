package model

import "time"

// RawBlock is the intermediate type produced by ledger sources and consumed
// by the classifier. Hash is kept verbatim as the provider reported it.
type RawBlock struct {
	Height int64     `json:"height"`
	Hash   string    `json:"hash"`
	Time   time.Time `json:"time"`
}

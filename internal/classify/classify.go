package classify

import (
	"errors"
	"fmt"

	"github.com/arwah7/dragonet/internal/model"
)

// ErrNoDigit is returned when a block hash carries no decimal digit to
// classify on.
var ErrNoDigit = errors.New("classify: hash has no decimal digit")

// FromBlock derives the classified outcome for a raw block. The result digit
// is the last decimal digit of the hash, scanning from the end past any
// trailing hex letters. Parity and size labels are derived here once;
// downstream consumers only read them.
func FromBlock(block model.RawBlock) (model.Outcome, error) {
	digit, err := lastDigit(block.Hash)
	if err != nil {
		return model.Outcome{}, fmt.Errorf("block %d: %w", block.Height, err)
	}
	return model.Outcome{
		Height: block.Height,
		Hash:   block.Hash,
		Digit:  digit,
		Parity: model.ParityOf(digit),
		Size:   model.SizeOf(digit),
		Time:   block.Time,
	}, nil
}

func lastDigit(hash string) (int, error) {
	for i := len(hash) - 1; i >= 0; i-- {
		if c := hash[i]; c >= '0' && c <= '9' {
			return int(c - '0'), nil
		}
	}
	return 0, ErrNoDigit
}

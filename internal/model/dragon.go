package model

import "strconv"

// Dragon is one detected streak at or above its rule's threshold. Recomputed
// on every pass, never persisted.
type Dragon struct {
	RuleID     string `json:"rule_id"`
	RuleLabel  string `json:"rule_label"`
	Axis       Axis   `json:"axis"`
	Value      Label  `json:"value"`       // dominant classification of the run
	Display    string `json:"display"`     // presentation label for Value
	Color      string `json:"color"`       // presentation color token for Value
	Count      int    `json:"count"`       // run length
	Threshold  int    `json:"threshold"`   // threshold the run was reported against
	NextHeight int64  `json:"next_height"` // height at which the run could extend
	Row        int    `json:"row"`         // 1-based bead row, 0 for trend streaks
}

// Key identifies the streak slot a dragon occupies, independent of its
// current length. Two passes reporting the same key describe the same streak.
func (d Dragon) Key() string {
	return d.RuleID + "/" + string(d.Axis) + "/" + string(d.Value) + "/" + strconv.Itoa(d.Row)
}

package dragonet_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arwah7/dragonet/pkg/dragonet"
)

// chain classifies n consecutive blocks whose hashes end in digit.
func chain(t *testing.T, n int, digit int) []dragonet.Outcome {
	t.Helper()
	outcomes := make([]dragonet.Outcome, 0, n)
	for h := int64(1); h <= int64(n); h++ {
		o, err := dragonet.ClassifyBlock(dragonet.RawBlock{
			Height: h,
			Hash:   fmt.Sprintf("%063x%d", h*31, digit),
		})
		require.NoError(t, err)
		outcomes = append(outcomes, o)
	}
	return outcomes
}

func TestAnalyzeFindsTrendAndRowDragons(t *testing.T) {
	report := dragonet.Analyze(chain(t, 20, 7), dragonet.DefaultRules())

	// An unbroken 20-block run: one trend dragon per axis on the
	// every-block rule. The interval rules see at most one sample.
	require.Len(t, report.Trend, 2)
	for _, d := range report.Trend {
		require.Equal(t, "block", d.RuleID)
		require.Equal(t, 20, d.Count)
	}

	// On the 6-row bead layout only rows 1 and 2 hold four samples,
	// enough for the every-block threshold of 4.
	require.Len(t, report.Row, 4)
	for _, d := range report.Row {
		require.Equal(t, "block", d.RuleID)
		require.Equal(t, 4, d.Count)
		require.Contains(t, []int{1, 2}, d.Row)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	report := dragonet.Analyze(nil, dragonet.DefaultRules())

	require.Empty(t, report.Trend)
	require.Empty(t, report.Row)
}

func TestRoadShapes(t *testing.T) {
	outcomes := chain(t, 10, 3)

	trend := dragonet.TrendRoad(outcomes, dragonet.AxisParity, 6)
	require.Equal(t, 6, trend.Rows)
	require.GreaterOrEqual(t, trend.Width(), 24)
	// 10 like outcomes wrap into one full column and one partial
	require.Equal(t, dragonet.Odd, trend.Cols[0][5].Value)
	require.Equal(t, dragonet.Odd, trend.Cols[1][3].Value)
	require.True(t, trend.Cols[1][4].Empty())

	bead := dragonet.BeadRoad(outcomes, dragonet.AxisSize, 6)
	require.Equal(t, 6, bead.Rows)
	require.Equal(t, dragonet.Small, bead.Cols[1][3].Value)
	require.True(t, bead.Cols[1][4].Empty())
}

func TestClassifyBlockRejectsDigitlessHash(t *testing.T) {
	_, err := dragonet.ClassifyBlock(dragonet.RawBlock{Height: 1, Hash: "abcdef"})

	require.Error(t, err)
}

func TestDefaultRules(t *testing.T) {
	rs := dragonet.DefaultRules()

	require.Len(t, rs, 4)
	require.Equal(t, "block", rs[0].ID)
	seen := map[string]bool{}
	for _, r := range rs {
		require.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
	}
}

package treedist

import (
	"math"
	"testing"

	"github.com/hupe1980/treedist/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ten-taxon trees and their pairwise Robinson-Foulds distances from the
// phylip treedist documentation:
// https://evolution.genetics.washington.edu/phylip/doc/treedist.html
var treedistTrees = []string{
	"(A:0.1,(B:0.1,(H:0.1,(D:0.1,(J:0.1,(((G:0.1,E:0.1):0.1,(F:0.1,I:0.1):0.1):0.1,C:0.1):0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(D:0.1,((J:0.1,H:0.1):0.1,(((G:0.1,E:0.1):0.1,(F:0.1,I:0.1):0.1):0.1,C:0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(D:0.1,(H:0.1,(J:0.1,(((G:0.1,E:0.1):0.1,(F:0.1,I:0.1):0.1):0.1,C:0.1):0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(E:0.1,(G:0.1,((F:0.1,I:0.1):0.1,((J:0.1,(H:0.1,D:0.1):0.1):0.1,C:0.1):0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(E:0.1,(G:0.1,((F:0.1,I:0.1):0.1,(((J:0.1,H:0.1):0.1,D:0.1):0.1,C:0.1):0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(E:0.1,((F:0.1,I:0.1):0.1,(G:0.1,((J:0.1,(H:0.1,D:0.1):0.1):0.1,C:0.1):0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(E:0.1,((F:0.1,I:0.1):0.1,(G:0.1,(((J:0.1,H:0.1):0.1,D:0.1):0.1,C:0.1):0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(E:0.1,((G:0.1,(F:0.1,I:0.1):0.1):0.1,((J:0.1,(H:0.1,D:0.1):0.1):0.1,C:0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(E:0.1,((G:0.1,(F:0.1,I:0.1):0.1):0.1,(((J:0.1,H:0.1):0.1,D:0.1):0.1,C:0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(E:0.1,(G:0.1,((F:0.1,I:0.1):0.1,((J:0.1,(H:0.1,D:0.1):0.1):0.1,C:0.1):0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(D:0.1,(H:0.1,(J:0.1,(((G:0.1,E:0.1):0.1,(F:0.1,I:0.1):0.1):0.1,C:0.1):0.1):0.1):0.1):0.1):0.1);",
	"(A:0.1,(B:0.1,(E:0.1,((G:0.1,(F:0.1,I:0.1):0.1):0.1,((J:0.1,(H:0.1,D:0.1):0.1):0.1,C:0.1):0.1):0.1):0.1):0.1);",
}

var treedistRF = [][]int{
	{0, 4, 2, 10, 10, 10, 10, 10, 10, 10, 2, 10},
	{4, 0, 2, 10, 8, 10, 8, 10, 8, 10, 2, 10},
	{2, 2, 0, 10, 10, 10, 10, 10, 10, 10, 0, 10},
	{10, 10, 10, 0, 2, 2, 4, 2, 4, 0, 10, 2},
	{10, 8, 10, 2, 0, 4, 2, 4, 2, 2, 10, 4},
	{10, 10, 10, 2, 4, 0, 2, 2, 4, 2, 10, 2},
	{10, 8, 10, 4, 2, 2, 0, 4, 2, 4, 10, 4},
	{10, 10, 10, 2, 4, 2, 4, 0, 2, 2, 10, 0},
	{10, 8, 10, 4, 2, 4, 2, 2, 0, 4, 10, 2},
	{10, 10, 10, 0, 2, 2, 4, 2, 4, 0, 10, 2},
	{2, 2, 0, 10, 10, 10, 10, 10, 10, 10, 0, 10},
	{10, 10, 10, 2, 4, 2, 4, 0, 2, 2, 10, 0},
}

func buildAll(t *testing.T, literals []string) []*Snapshot {
	t.Helper()

	snapshots, err := BuildSnapshots(testutil.MustParseTrees(literals...))
	require.NoError(t, err)

	return snapshots
}

func TestTreedistGolden(t *testing.T) {
	snapshots := buildAll(t, treedistTrees)

	for i := range snapshots {
		for j := i + 1; j < len(snapshots); j++ {
			rf := treedistRF[i][j]

			assert.Equal(t, rf, Unweighted(snapshots[i], snapshots[j]), "rf %d vs %d", i, j)

			// Every edge in these trees has length 0.1, so each metric is a
			// closed form of the unweighted distance.
			assert.InDelta(t, 0.1*float64(rf), Weighted(snapshots[i], snapshots[j]), 1e-9)
			assert.InDelta(t, 0.1*math.Sqrt(float64(rf)), BranchScore(snapshots[i], snapshots[j]), 1e-9)
		}
	}
}

func TestSelfDistanceIsZero(t *testing.T) {
	for _, s := range buildAll(t, treedistTrees) {
		assert.Equal(t, 0, Unweighted(s, s))
		assert.Equal(t, 0.0, Weighted(s, s))
		assert.Equal(t, 0.0, BranchScore(s, s))
	}
}

func TestDistanceSymmetry(t *testing.T) {
	snapshots := buildAll(t, treedistTrees[:5])

	for i := range snapshots {
		for j := range snapshots {
			assert.Equal(t, Unweighted(snapshots[i], snapshots[j]), Unweighted(snapshots[j], snapshots[i]))
			assert.Equal(t, Weighted(snapshots[i], snapshots[j]), Weighted(snapshots[j], snapshots[i]))
			assert.Equal(t, BranchScore(snapshots[i], snapshots[j]), BranchScore(snapshots[j], snapshots[i]))
		}
	}
}

func TestUnweightedRootedQuartets(t *testing.T) {
	// Both trees collapse to a single canonical partition, which differs, so
	// the set distance is 2; the root child sets differ too, adding 2 more.
	snapshots := buildAll(t, []string{
		"((A,B),(C,D));",
		"((A,C),(B,D));",
	})
	assert.Equal(t, 4, Unweighted(snapshots[0], snapshots[1]))
}

func TestRootedAdjustment(t *testing.T) {
	t.Run("same root children", func(t *testing.T) {
		snapshots := buildAll(t, []string{
			"((E,F),((A,B),(C,D)));",
			"((E,F),((A,C),(B,D)));",
		})
		assert.Equal(t, 4, Unweighted(snapshots[0], snapshots[1]))
	})

	t.Run("different root children", func(t *testing.T) {
		// Same two unrooted topologies as above, rooted along another edge.
		// The partition sets are unchanged but the root child sets now
		// disagree, so the distance picks up the extra 2.
		snapshots := buildAll(t, []string{
			"((A,B),((C,D),(E,F)));",
			"((A,C),((B,D),(E,F)));",
		})
		assert.Equal(t, 6, Unweighted(snapshots[0], snapshots[1]))
	})

	t.Run("zero distance overrides root mismatch", func(t *testing.T) {
		// One topology rooted along two different edges. The canonical
		// partition sets coincide, so the result stays 0 even though the
		// root child sets differ.
		snapshots := buildAll(t, []string{
			"((A,B),(C,(D,E)));",
			"(((A,B),C),(D,E));",
		})
		assert.Equal(t, 0, Unweighted(snapshots[0], snapshots[1]))
	})
}

func TestWeightedSharedAndUniqueSplits(t *testing.T) {
	snapshots := buildAll(t, []string{
		"((A:1,B:1):2.0,(C:1,D:1):2.0,E:1);",
		"((A:1,B:1):3.0,(C:1,D:1):2.0,E:1);",
	})

	// Same partitions, one shared length differs by 1.
	assert.Equal(t, 0, Unweighted(snapshots[0], snapshots[1]))
	assert.Equal(t, 1.0, Weighted(snapshots[0], snapshots[1]))
	assert.Equal(t, 1.0, BranchScore(snapshots[0], snapshots[1]))
}

func TestWeightedUnsharedSplitsUseFullLength(t *testing.T) {
	snapshots := buildAll(t, []string{
		"((A:1,B:1):2.0,(C:1,D:1):4.0,E:1);",
		"((A:1,C:1):3.0,(B:1,D:1):5.0,E:1);",
	})

	// No partition is shared; every length counts once on its own side.
	assert.Equal(t, 4, Unweighted(snapshots[0], snapshots[1]))
	assert.InDelta(t, 2.0+4.0+3.0+5.0, Weighted(snapshots[0], snapshots[1]), 1e-12)
	assert.InDelta(t, math.Sqrt(4+16+9+25), BranchScore(snapshots[0], snapshots[1]), 1e-12)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "Unweighted", MetricUnweighted.String())
	assert.Equal(t, "Weighted", MetricWeighted.String())
	assert.Equal(t, "BranchScore", MetricBranchScore.String())
	assert.Equal(t, "Unknown(42)", Metric(42).String())
}

func TestProvider(t *testing.T) {
	for _, m := range []Metric{MetricUnweighted, MetricWeighted, MetricBranchScore} {
		fn, err := Provider(m)
		require.NoError(t, err)
		require.NotNil(t, fn)
	}

	_, err := Provider(Metric(42))
	assert.Error(t, err)
}

package intergenic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmgie/intergene-finder/internal/gff"
)

func TestFind_NoFeaturesCoversReference(t *testing.T) {
	for _, n := range []int{1, 10, 12345} {
		gaps, err := Find(nil, n, Options{Buffer: 3})
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{1, n}}, spans(gaps))
	}
}

func TestFind_NoQualifyingFeatures(t *testing.T) {
	feats := []gff.Feature{gene(3, 5, gff.Minus)}
	gaps, err := Find(feats, 8, Options{Strand: gff.Plus})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 8}}, spans(gaps))
	assert.Equal(t, gff.Plus, gaps[0].Strand)
}

func TestFind_OneBaseAdjacencyAbsorbed(t *testing.T) {
	feats := []gff.Feature{gene(3, 5, gff.Plus), gene(6, 8, gff.Plus)}
	gaps, err := Find(feats, 8, Options{})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}}, spans(gaps))
}

func TestFind_ReferenceFullyCovered(t *testing.T) {
	gaps, err := Find([]gff.Feature{gene(1, 10, gff.Plus)}, 10, Options{})
	require.NoError(t, err)
	assert.Empty(t, gaps)
}

// A gap (eA+1, sB-1) between consecutive features exists iff sB-eA > buffer.
func TestFind_BufferProperty(t *testing.T) {
	const eA = 10
	for buffer := 0; buffer <= 6; buffer++ {
		for delta := 2; delta <= 12; delta++ {
			sB := eA + delta
			feats := []gff.Feature{gene(5, eA, gff.Plus), gene(sB, sB+3, gff.Plus)}
			gaps, err := Find(feats, sB+3, Options{Buffer: buffer})
			require.NoError(t, err)

			found := false
			for _, g := range gaps {
				if g.Start == eA+1 && g.End == sB-1 {
					found = true
				}
			}
			assert.Equal(t, delta > buffer, found, "buffer=%d delta=%d gaps=%v", buffer, delta, gaps)
		}
	}
}

func TestFind_BufferSuppressesLeadingGap(t *testing.T) {
	gaps, err := Find([]gff.Feature{gene(3, 5, gff.Plus)}, 5, Options{Buffer: 3})
	require.NoError(t, err)
	assert.Empty(t, gaps)

	gaps, err = Find([]gff.Feature{gene(5, 6, gff.Plus)}, 6, Options{Buffer: 3})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 4}}, spans(gaps))
}

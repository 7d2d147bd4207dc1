// Package sim builds deterministic random references and annotations for
// exercising the sweep and extraction end to end.
package sim

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/dmgie/intergene-finder/internal/gff"
)

// Make returns an upper‑case DNA sequence of given length with ~gc fraction GC.
// If seed==0 we use a time-based seed; otherwise results are reproducible.
func Make(length int, gc float64, seed int64) []byte {
	if length <= 0 {
		return []byte{}
	}
	if gc < 0 {
		gc = 0
	}
	if gc > 1 {
		gc = 1
	}
	r := newRand(seed)

	gcCount := int(float64(length)*gc + 0.5) // nearest integer
	if gcCount > length {
		gcCount = length
	}

	seq := make([]byte, length)
	for i := range seq {
		var pair string
		if i < gcCount {
			pair = "GC"
		} else {
			pair = "AT"
		}
		seq[i] = pair[r.Intn(2)]
	}

	// Shuffle to disperse bases.
	r.Shuffle(length, func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
	return seq
}

// Tile returns genes in ascending start order separated by random spacers
// of 1..maxSpacer bases; every gene is at most maxGene bases and the last
// one ends at or before length. Strands alternate randomly between + and -.
func Tile(seqID string, length, maxGene, maxSpacer int, seed int64) []gff.Feature {
	if maxGene < 1 {
		maxGene = 1
	}
	if maxSpacer < 1 {
		maxSpacer = 1
	}
	r := newRand(seed)

	var feats []gff.Feature
	pos := 1 + r.Intn(maxSpacer)
	for n := 1; pos <= length; n++ {
		end := pos + r.Intn(maxGene)
		if end > length {
			end = length
		}
		strand := gff.Plus
		if r.Intn(2) == 1 {
			strand = gff.Minus
		}
		feats = append(feats, gff.Feature{
			SeqID:      seqID,
			Source:     "sim",
			Type:       "gene",
			Start:      pos,
			End:        end,
			Score:      ".",
			Strand:     strand,
			Phase:      ".",
			Attributes: "ID=gene" + strconv.Itoa(n),
		})
		pos = end + 1 + r.Intn(maxSpacer) + 1
	}
	return feats
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

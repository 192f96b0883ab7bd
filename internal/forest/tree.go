package forest

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

const leaf = -1

// node is a flattened tree node. Leaves have feature == leaf.
type node struct {
	feature   int
	threshold float64
	left      int
	right     int
	class     int
}

type tree struct {
	nodes []node
}

func (t *tree) predict(x []float64) int {
	i := 0
	for {
		n := &t.nodes[i]
		if n.feature == leaf {
			return n.class
		}
		if x[n.feature] <= n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
}

// builder grows one CART tree on a bootstrap sample using Gini impurity.
type builder struct {
	x           [][]float64
	y           []int
	classes     int
	maxDepth    int
	minSplit    int
	maxFeatures int
	rng         *rand.Rand

	nodes    []node
	features []int
	order    []int
	left     []int
	right    []int
}

func newBuilder(x [][]float64, y []int, classes int, cfg Config, rng *rand.Rand) *builder {
	width := len(x[0])
	features := make([]int, width)
	for i := range features {
		features[i] = i
	}

	return &builder{
		x:           x,
		y:           y,
		classes:     classes,
		maxDepth:    cfg.MaxDepth,
		minSplit:    cfg.MinSamplesSplit,
		maxFeatures: cfg.maxFeatures(width),
		rng:         rng,
		features:    features,
		left:        make([]int, classes),
		right:       make([]int, classes),
	}
}

func (b *builder) grow() *tree {
	n := len(b.x)
	sample := make([]int, n)
	for i := range sample {
		sample[i] = b.rng.IntN(n)
	}
	b.order = make([]int, 0, n)

	b.split(sample, 0)
	return &tree{nodes: b.nodes}
}

func (b *builder) split(idx []int, depth int) int {
	counts := make([]int, b.classes)
	for _, i := range idx {
		counts[b.y[i]]++
	}

	id := len(b.nodes)
	b.nodes = append(b.nodes, node{feature: leaf, class: argmax(counts)})

	if isPure(counts) || len(idx) < b.minSplit || (b.maxDepth > 0 && depth >= b.maxDepth) {
		return id
	}

	feature, threshold, ok := b.bestSplit(idx, counts)
	if !ok {
		return id
	}

	mid := partition(idx, func(i int) bool { return b.x[i][feature] <= threshold })
	left := b.split(idx[:mid], depth+1)
	right := b.split(idx[mid:], depth+1)

	b.nodes[id] = node{feature: feature, threshold: threshold, left: left, right: right}
	return id
}

// bestSplit evaluates up to maxFeatures non-constant features in random order
// and returns the threshold with the lowest weighted Gini impurity.
func (b *builder) bestSplit(idx []int, counts []int) (int, float64, bool) {
	total := len(idx)
	best := weightedGini(counts, total)
	bestFeature, bestThreshold := leaf, 0.0

	b.rng.Shuffle(len(b.features), func(i, j int) {
		b.features[i], b.features[j] = b.features[j], b.features[i]
	})

	tried := 0
	for _, f := range b.features {
		if tried >= b.maxFeatures {
			break
		}

		b.order = append(b.order[:0], idx...)
		slices.SortFunc(b.order, func(p, q int) int {
			return cmp.Compare(b.x[p][f], b.x[q][f])
		})

		lo, hi := b.x[b.order[0]][f], b.x[b.order[total-1]][f]
		if lo == hi {
			continue
		}
		tried++

		clear(b.left)
		copy(b.right, counts)
		for pos := 0; pos < total-1; pos++ {
			c := b.y[b.order[pos]]
			b.left[c]++
			b.right[c]--

			cur, next := b.x[b.order[pos]][f], b.x[b.order[pos+1]][f]
			if cur == next {
				continue
			}

			nl := pos + 1
			impurity := weightedGini(b.left, nl) + weightedGini(b.right, total-nl)
			if impurity < best-1e-12 {
				best = impurity
				bestFeature = f
				bestThreshold = midpoint(cur, next)
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature != leaf
}

// weightedGini returns n * gini(counts).
func weightedGini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range counts {
		sum += float64(c) * float64(c)
	}
	return float64(n) - sum/float64(n)
}

func midpoint(a, b float64) float64 {
	m := a + (b-a)/2
	if m >= b {
		return a
	}
	return m
}

func partition(idx []int, keepLeft func(int) bool) int {
	mid := 0
	for i, v := range idx {
		if keepLeft(v) {
			idx[mid], idx[i] = idx[i], idx[mid]
			mid++
		}
	}
	return mid
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

// argmax returns the index of the largest count, preferring the lowest index on ties.
func argmax(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

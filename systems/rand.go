package systems

// Rand is the random source behavior draws from. *math/rand.Rand satisfies it;
// tests substitute scripted sources to force the probabilistic branches.
type Rand interface {
	Float64() float64
}

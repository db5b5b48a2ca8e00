// Package sampler orders and draws graph successors at random, biased by edge
// weight.
//
// Two interchangeable ordering policies are provided:
//
//	Roulette  each successor gets key Exp(1)/weight; ascending key order.
//	Uniform   weights ignored; uniform Fisher–Yates shuffle.
//
// Both policies return a full permutation of their input and re-randomize on
// every call. Draw picks a single successor with probability
// weight / sum-of-weights.
//
// Randomness always flows through an explicit *rand.Rand. NewRand applies the
// seed==0 ⇒ DefaultSeed policy; Derive and DeriveSeed split one seed into
// independent per-worker streams.
package sampler

// Package bsgs — see types.go (BSGS, Strip, ExtendBase, Order),
// schreier_sims.go (deterministic construction), and
// schreier_sims_random.go (randomized/product-replacement construction).
package bsgs

// Copyright (c) 2026 ArtScope. All rights reserved.

package browse

import "math/rand/v2"

// Shuffler reorders candidate ids in place.
type Shuffler interface {
	Shuffle(ids []int)
}

// ShuffleFunc adapts a function to [Shuffler].
type ShuffleFunc func(ids []int)

func (fn ShuffleFunc) Shuffle(ids []int) { fn(ids) }

// RandomShuffle is a uniform Fisher–Yates shuffle over the global generator.
var RandomShuffle Shuffler = ShuffleFunc(func(ids []int) {
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
})

// NoShuffle keeps the upstream order. Used by tests and reproducible CLI runs.
var NoShuffle Shuffler = ShuffleFunc(func([]int) {})

package wordlist

import (
	"math/rand"
	"strings"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForSound keeps words containing the articulation sound, ignoring
// case. A blank sound keeps everything.
func FilterForSound(sound string) FilterFunc {
	sound = strings.ToLower(strings.TrimSpace(sound))
	if sound == "" {
		return func(string) bool { return true }
	}
	return func(word string) bool {
		return strings.Contains(strings.ToLower(word), sound)
	}
}

// Suggest picks up to count distinct words matching sound in random order.
func Suggest(words []string, sound string, count int, rnd *rand.Rand) []string {
	if count <= 0 {
		return nil
	}
	keep := FilterForSound(sound)
	seen := make(map[string]struct{}, len(words))
	pool := make([]string, 0, len(words))
	for _, word := range words {
		if !keep(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		pool = append(pool, word)
	}
	rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

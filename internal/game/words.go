package game

import "math/rand"

// The fixed bank of secret words. All uppercase alphabetic.
var wordBank = []string{
	"HANGMAN",
	"ZOO",
	"PYTHON",
	"GRANDMOTHER",
	"RELATIONSHIP",
	"SWIFT",
	"PRESIDENT",
}

// RandomWord picks one secret word uniformly at random from the bank.
var RandomWord = func() string {
	return wordBank[rand.Intn(len(wordBank))]
}

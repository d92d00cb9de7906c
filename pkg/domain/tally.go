package domain

import "fmt"

// CharacterTally counts vowels and consonants among the ASCII letters of a
// text. Other characters are not represented.
type CharacterTally struct {
	Vowels     int
	Consonants int
}

// Letters returns the number of classified letters.
func (t CharacterTally) Letters() int { return t.Vowels + t.Consonants }

// Message returns the two result lines shown to the user.
func (t CharacterTally) Message() string {
	return fmt.Sprintf("Vowels: %d\nConsonants: %d", t.Vowels, t.Consonants)
}

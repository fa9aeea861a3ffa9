// Package textmetrics provides lightweight text statistics used by the
// signal analyzers: tokenization, word/sentence/syllable counts, and the
// Flesch reading-ease score.
package textmetrics

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase word tokens. Tokens keep letters,
// digits, and underscores; everything else separates tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SentenceCount returns the number of sentences in text, counting
// terminal punctuation runs. Text without terminal punctuation counts
// as a single sentence.
func SentenceCount(text string) int {
	count := 0
	inTerminator := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminator {
				count++
				inTerminator = true
			}
		default:
			inTerminator = false
		}
	}
	if count == 0 && strings.TrimSpace(text) != "" {
		return 1
	}
	return count
}

// SyllableCount estimates the number of syllables in a single word by
// counting vowel groups, with a silent-e adjustment. Words without
// vowels count as one syllable.
func SyllableCount(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := isVowel(r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	// Silent trailing e ("make", "note"), but not "le" endings ("table").
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}

	if count == 0 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// FleschReadingEase computes the Flesch reading-ease score:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// Higher scores mean easier text. Short simple phrases can exceed 100;
// dense technical text can go negative. Empty text scores 0.
func FleschReadingEase(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := SentenceCount(text)
	syllables := 0
	for _, w := range words {
		syllables += SyllableCount(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	return 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
}

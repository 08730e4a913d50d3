package themes

// defaultStopWords are common English function words that never count as
// themes: pronouns, articles, auxiliaries, prepositions and fillers.
var defaultStopWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours",
	"yourself", "yourselves", "he", "him", "his", "himself", "she", "her", "hers",
	"herself", "it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having", "do", "does",
	"did", "doing", "a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then", "once", "here",
	"there", "when", "where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own", "same", "so",
	"than", "too", "very", "s", "t", "can", "will", "just", "don", "should", "now",
}

// PromptWords echo the entry form placeholders ("Things I hope for...").
// They are not stop words by default; enable them with
// themes.exclude_prompt_words when the placeholders leak into entries.
var PromptWords = []string{"things", "hope"}

// StopWords is a case-insensitive word set. Members are stored lowercased.
type StopWords map[string]struct{}

// DefaultStopWords returns a fresh copy of the reference stop-word set.
func DefaultStopWords() StopWords {
	return NewStopWords(defaultStopWords...)
}

// NewStopWords builds a set from words, lowercasing each one.
func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	s.Add(words...)
	return s
}

// Add inserts words into the set.
func (s StopWords) Add(words ...string) {
	for _, w := range words {
		w = lower(w)
		if w != "" {
			s[w] = struct{}{}
		}
	}
}

// Contains reports whether word is a stop word.
func (s StopWords) Contains(word string) bool {
	_, ok := s[lower(word)]
	return ok
}

package emoji

// EmojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"score":      {"🎯", "[SCORE]"},
	"positive":   {"✅", "[MET]"},
	"warning":    {"⚠️", "[PART]"},
	"negative":   {"❌", "[MISS]"},
	"neutral":    {"•", "[?]"},
	"strengths":  {"💪", "[+]"},
	"improve":    {"📈", "[->]"},
	"summary":    {"📝", "[SUM]"},
	"feedback":   {"💡", "[FB]"},
	"statistics": {"📊", "[STATS]"},
	"error":      {"❌", "[ERR]"},
	"success":    {"✅", "[OK]"},
	"upload":     {"📄", "[DOC]"},
	"watch":      {"👀", "[WATCH]"},
	"graded":     {"🎓", "[GRADE]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1] // fallback
		}
		return mapping[0] // emoji
	}
	return "[?]" // unknown key
}

package game

// Notice is a short banner shown until the driver frame Expires.
type Notice struct {
	Text    string
	Expires uint64
}

// NoticeFeed is a bounded FIFO of timed banners.
type NoticeFeed struct {
	notices []Notice
	maxSize int
}

// NewNoticeFeed creates a feed that keeps at most maxSize lines.
func NewNoticeFeed(maxSize int) *NoticeFeed {
	return &NoticeFeed{
		notices: make([]Notice, 0, maxSize),
		maxSize: maxSize,
	}
}

// noticeWidth fits the banner box on the HUD.
const noticeWidth = 40

// Add appends a banner that lives until frame expires, evicting the oldest
// line if full. Long text is wrapped.
func (f *NoticeFeed) Add(text string, expires uint64) {
	for _, line := range wrapText(text, noticeWidth) {
		n := Notice{Text: line, Expires: expires}
		if len(f.notices) >= f.maxSize {
			copy(f.notices, f.notices[1:])
			f.notices[len(f.notices)-1] = n
		} else {
			f.notices = append(f.notices, n)
		}
	}
}

// Expire drops every banner whose deadline is at or before now.
func (f *NoticeFeed) Expire(now uint64) {
	kept := f.notices[:0]
	for _, n := range f.notices {
		if n.Expires > now {
			kept = append(kept, n)
		}
	}
	f.notices = kept
}

// Clear drops all banners.
func (f *NoticeFeed) Clear() { f.notices = f.notices[:0] }

// Lines returns the text of the live banners, oldest first.
func (f *NoticeFeed) Lines() []string {
	out := make([]string, len(f.notices))
	for i, n := range f.notices {
		out[i] = n.Text
	}
	return out
}

// wrapText splits text into lines no longer than maxWidth.
func wrapText(s string, maxWidth int) []string {
	if len(s) <= maxWidth {
		return []string{s}
	}
	var result []string
	words := splitWords(s)
	if len(words) == 0 {
		return []string{""}
	}
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	if line != "" {
		result = append(result, line)
	}
	return result
}

// splitWords splits on whitespace.
func splitWords(s string) []string {
	var words []string
	word := ""
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if word != "" {
				words = append(words, word)
				word = ""
			}
		} else {
			word += string(r)
		}
	}
	if word != "" {
		words = append(words, word)
	}
	return words
}

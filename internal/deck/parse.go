package deck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
)

const ornamentPrefix = "<!-- ornament:"

var errEmptyDeck = errors.New("deck contains no slides")

// Parse reads a markdown deck: an optional YAML frontmatter block followed
// by slides separated by "---" thematic-break lines. Ornament directives
// inside a slide body are extracted into the slide's Ornaments.
func Parse(r io.Reader) (*Deck, error) {
	var meta Meta
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, fmt.Errorf("frontmatter: %w", err)
	}

	var slides []*Slide
	for _, chunk := range splitSlides(string(body)) {
		content, ornaments := extractOrnaments(chunk)
		if strings.TrimSpace(content) == "" && len(ornaments) == 0 {
			continue
		}
		slides = append(slides, &Slide{
			Index:     len(slides) + 1,
			Content:   content,
			Ornaments: ornaments,
		})
	}
	if len(slides) == 0 {
		return nil, errEmptyDeck
	}

	return &Deck{Meta: meta, Slides: slides}, nil
}

// ParseFile parses the deck stored at path.
func ParseFile(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// splitSlides divides the body on lines consisting solely of a thematic
// break. Breaks inside fenced code blocks are left alone.
func splitSlides(body string) []string {
	var (
		chunks  []string
		current []string
		inFence bool
	)
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}
		if !inFence && isRule(trimmed) {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = current[:0]
			continue
		}
		current = append(current, line)
	}
	chunks = append(chunks, strings.Join(current, "\n"))
	return chunks
}

func isRule(line string) bool {
	if len(line) < 3 {
		return false
	}
	for _, r := range line {
		if r != '-' {
			return false
		}
	}
	return true
}

// extractOrnaments removes ornament directive lines from the chunk and
// returns them separately. A directive has the form
// "<!-- ornament: TEXT -->" with an optional trailing "animated" word.
func extractOrnaments(chunk string) (string, []Ornament) {
	var (
		kept      []string
		ornaments []Ornament
	)
	for _, line := range strings.Split(chunk, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, ornamentPrefix) || !strings.HasSuffix(trimmed, "-->") {
			kept = append(kept, line)
			continue
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, ornamentPrefix), "-->")
		inner = strings.TrimSpace(inner)
		animated := false
		if rest, found := strings.CutSuffix(inner, " animated"); found {
			inner = strings.TrimSpace(rest)
			animated = true
		}
		if inner == "" {
			continue
		}
		ornaments = append(ornaments, Ornament{Text: inner, Animated: animated})
	}
	return strings.TrimSpace(strings.Join(kept, "\n")), ornaments
}

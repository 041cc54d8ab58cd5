package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/campus-maps/internal/domain"
)

// ParseMode - как разбирать координаты в списке линий
type ParseMode string

const (
	// ParseStrict принимает только целые числа; строка с плохой координатой отбрасывается
	ParseStrict ParseMode = "strict"
	// ParseLenient повторяет parseInt: "12abc" -> 12, нечисловой токен -> NaN
	ParseLenient ParseMode = "lenient"
)

// segmentTokens - x1 y1 x2 y2 color
const segmentTokens = 5

var whitespaceRun = regexp.MustCompile(`\s+`)

// ParseParseMode maps a config value to a ParseMode, defaulting to strict.
func ParseParseMode(s string) ParseMode {
	if ParseMode(strings.ToLower(strings.TrimSpace(s))) == ParseLenient {
		return ParseLenient
	}
	return ParseStrict
}

// ParseLines разбирает текст "x1 y1 x2 y2 color" построчно.
// Строки с другим числом токенов молча пропускаются; порядок сохраняется.
// Переводы строк CRLF (так их присылает форма браузера) считаются за LF.
func ParseLines(text string, mode ParseMode) []domain.Segment {
	segments := []domain.Segment{}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		var (
			segment domain.Segment
			ok      bool
		)
		if mode == ParseLenient {
			segment, ok = parseLenientLine(line)
		} else {
			segment, ok = parseStrictLine(line)
		}
		if ok {
			segments = append(segments, segment)
		}
	}
	return segments
}

func parseStrictLine(line string) (domain.Segment, bool) {
	tokens := strings.Fields(line)
	if len(tokens) != segmentTokens {
		return domain.Segment{}, false
	}

	var coords [4]float64
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseInt(tokens[i], 10, 64)
		if err != nil {
			return domain.Segment{}, false
		}
		coords[i] = float64(v)
	}

	return domain.Segment{
		X1:    coords[0],
		Y1:    coords[1],
		X2:    coords[2],
		Y2:    coords[3],
		Color: tokens[4],
	}, true
}

// parseLenientLine: leading or trailing whitespace produces empty tokens, so
// such lines never have exactly five tokens.
func parseLenientLine(line string) (domain.Segment, bool) {
	tokens := whitespaceRun.Split(line, -1)
	if len(tokens) != segmentTokens {
		return domain.Segment{}, false
	}

	return domain.Segment{
		X1:    leadingInt(tokens[0]),
		Y1:    leadingInt(tokens[1]),
		X2:    leadingInt(tokens[2]),
		Y2:    leadingInt(tokens[3]),
		Color: strings.TrimSpace(tokens[4]),
	}, true
}

// leadingInt parses the longest integer prefix of s, NaN when there is none.
// Accepts an optional sign and a 0x/0X hex prefix.
func leadingInt(s string) float64 {
	s = strings.TrimSpace(s)

	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	base := 10
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == 0 {
		return math.NaN()
	}

	var v float64
	for i := 0; i < end; i++ {
		v = v*float64(base) + float64(digitValue(s[i]))
	}
	return sign * v
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 99
}

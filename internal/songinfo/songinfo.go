package songinfo

import (
	"regexp"
	"strconv"
	"strings"

	"git.lost.host/meutraa/bmsc/internal/bms"
)

// Difficulty values of the #DIFFICULTY header.
const (
	Beginner = 1
	Normal   = 2
	Hyper    = 3
	Another  = 4
	Insane   = 5
)

type SongInfo struct {
	Title      string
	Artist     string
	Genre      string
	Subtitles  []string // One line each, often the difficulty name
	Subartists []string
	Difficulty int
	Level      int // #PLAYLEVEL
}

func New() *SongInfo {
	return &SongInfo{
		Title:      "NO TITLE",
		Artist:     "NO ARTIST",
		Genre:      "NO GENRE",
		Subtitles:  []string{},
		Subartists: []string{},
	}
}

// Tried in order, the first match splits the title.
var subtitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.*\S)\s*-(.+?)-$`),
	regexp.MustCompile(`^(.*\S)\s*～(.+?)～$`),
	regexp.MustCompile(`^(.*\S)\s*\((.+?)\)$`),
	regexp.MustCompile(`^(.*\S)\s*\[(.+?)\]$`),
	regexp.MustCompile(`^(.*\S)\s*<(.+?)>$`),
}

// SplitTitle separates a trailing bracketed subtitle, "Exargon [HYPER]"
// becomes "Exargon" and "HYPER".
func SplitTitle(title string) (string, string, bool) {
	for _, pattern := range subtitlePatterns {
		if m := pattern.FindStringSubmatch(title); m != nil {
			return m[1], m[2], true
		}
	}
	return title, "", false
}

func headerInt(chart *bms.Chart, name string) int {
	v, _ := chart.Headers.Get(name)
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if nil != err {
		return 0
	}
	return int(f)
}

func FromChart(chart *bms.Chart) *SongInfo {
	info := New()

	title, _ := chart.Headers.Get("title")
	subtitles := chart.Headers.GetAll("subtitle")
	if title != "" && subtitles == nil {
		if t, sub, ok := SplitTitle(title); ok {
			title = t
			subtitles = []string{sub}
		}
	}

	if title != "" {
		info.Title = title
	}
	if artist, _ := chart.Headers.Get("artist"); artist != "" {
		info.Artist = artist
	}
	if genre, _ := chart.Headers.Get("genre"); genre != "" {
		info.Genre = genre
	}
	if subtitles != nil {
		info.Subtitles = subtitles
	}
	if subartists := chart.Headers.GetAll("subartist"); subartists != nil {
		info.Subartists = subartists
	}
	info.Difficulty = headerInt(chart, "difficulty")
	info.Level = headerInt(chart, "playlevel")
	return info
}

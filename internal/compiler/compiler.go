// Package compiler reads the text of a chart and compiles it into a
// bms.Chart, resolving #RANDOM / #IF control flow on the way.
package compiler

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"git.lost.host/meutraa/bmsc/internal/bms"
)

// Format selects the line dialect.
type Format int

const (
	FormatBMS Format = iota
	FormatDTX
)

func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(name) {
	case "bms", "bme", "bml", "pms", "":
		return FormatBMS, true
	case "dtx":
		return FormatDTX, true
	}
	return FormatBMS, false
}

type matcher struct {
	random        *regexp.Regexp
	ifs           *regexp.Regexp
	endif         *regexp.Regexp
	timeSignature *regexp.Regexp
	channel       *regexp.Regexp
	header        *regexp.Regexp
}

var matchers = map[Format]*matcher{
	FormatBMS: {
		random:        regexp.MustCompile(`(?i)^#RANDOM\s+(\d+)$`),
		ifs:           regexp.MustCompile(`(?i)^#IF\s+(\d+)$`),
		endif:         regexp.MustCompile(`(?i)^#ENDIF$`),
		timeSignature: regexp.MustCompile(`^#(\d\d\d)02:(\S*)$`),
		channel:       regexp.MustCompile(`^#(?:EXT\s+#)?(\d\d\d)(\S\S):(\S*)$`),
		header:        regexp.MustCompile(`^#(\w+)(?:\s+(\S.*))?$`),
	},
	FormatDTX: {
		random:        regexp.MustCompile(`(?i)^#RANDOM\s+(\d+)$`),
		ifs:           regexp.MustCompile(`(?i)^#IF\s+(\d+)$`),
		endif:         regexp.MustCompile(`(?i)^#ENDIF$`),
		timeSignature: regexp.MustCompile(`^#(\d\d\d)02:\s*(\S*)$`),
		channel:       regexp.MustCompile(`^#(?:EXT\s+#)?(\d\d\d)(\S\S):\s*(\S*)$`),
		header:        regexp.MustCompile(`^#(\w+):(?:\s+(\S.*))?$`),
	},
}

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// Options for Compile. The zero value compiles the bms dialect with a
// uniform random draw for #RANDOM.
type Options struct {
	Format Format

	// Rand returns an integer in [1, max] for #RANDOM max.
	Rand func(max int) int
}

type Warning struct {
	LineNumber int
	Message    string
}

type Result struct {
	Chart *bms.Chart

	HeaderSentences    int
	ChannelSentences   int
	ControlSentences   int
	SkippedSentences   int
	MalformedSentences int

	Warnings []Warning
}

func (r *Result) warn(lineNumber int, message string) {
	r.Warnings = append(r.Warnings, Warning{LineNumber: lineNumber, Message: message})
}

func defaultRand(max int) int {
	if max < 1 {
		return 1
	}
	return 1 + rand.Intn(max)
}

// Compile never fails: malformed sentences are counted and reported as
// warnings and compilation carries on with the next line.
//
// An #IF nested in a skipped block is skipped too, whatever its value.
func Compile(text string, options Options) *Result {
	m, ok := matchers[options.Format]
	if !ok {
		m = matchers[FormatBMS]
	}
	rng := options.Rand
	if rng == nil {
		rng = defaultRand
	}

	result := &Result{Chart: bms.NewChart()}
	chart := result.Chart

	randoms := []int{}
	skips := []bool{false}

	for i, line := range lineBreak.Split(text, -1) {
		lineNumber := i + 1
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			continue
		}

		if match := m.random.FindStringSubmatch(line); match != nil {
			result.ControlSentences++
			max, err := strconv.Atoi(match[1])
			if nil != err || max < 1 {
				result.warn(lineNumber, "invalid #RANDOM range "+strconv.Quote(match[1])+", using 1")
				randoms = append(randoms, 1)
				continue
			}
			randoms = append(randoms, rng(max))
			continue
		}
		if match := m.ifs.FindStringSubmatch(line); match != nil {
			result.ControlSentences++
			value, _ := strconv.Atoi(match[1])
			skip := skips[len(skips)-1]
			if len(randoms) == 0 {
				result.warn(lineNumber, "#IF without #RANDOM")
				skip = true
			} else if randoms[len(randoms)-1] != value {
				skip = true
			}
			skips = append(skips, skip)
			continue
		}
		if m.endif.MatchString(line) {
			result.ControlSentences++
			if len(skips) == 1 {
				result.warn(lineNumber, "#ENDIF without #IF")
				continue
			}
			skips = skips[:len(skips)-1]
			continue
		}

		skipped := skips[len(skips)-1]
		if match := m.timeSignature.FindStringSubmatch(line); match != nil {
			result.ChannelSentences++
			if skipped {
				result.SkippedSentences++
				continue
			}
			measure, _ := strconv.Atoi(match[1])
			size, err := strconv.ParseFloat(match[2], 64)
			if nil != err || !(size > 0) || math.IsInf(size*4, 0) {
				result.warn(lineNumber, "invalid measure size "+strconv.Quote(match[2]))
				continue
			}
			chart.TimeSignatures.Set(measure, size)
		} else if match := m.channel.FindStringSubmatch(line); match != nil {
			result.ChannelSentences++
			if skipped {
				result.SkippedSentences++
				continue
			}
			measure, _ := strconv.Atoi(match[1])
			handleChannelSentence(result, measure, match[2], match[3], lineNumber)
		} else if match := m.header.FindStringSubmatch(line); match != nil {
			result.HeaderSentences++
			if skipped {
				result.SkippedSentences++
				continue
			}
			chart.Headers.Set(match[1], match[2])
		} else {
			result.MalformedSentences++
			result.warn(lineNumber, "invalid command")
		}
	}

	if len(skips) > 1 {
		result.warn(0, strconv.Itoa(len(skips)-1)+" #IF left open")
	}

	return result
}

// Every two characters of data is one object, evenly spread over the
// measure. "00" is a rest.
func handleChannelSentence(result *Result, measure int, channel, data string, lineNumber int) {
	chars := []rune(data)
	items := len(chars) / 2
	if len(chars)%2 != 0 {
		result.warn(lineNumber, "odd length channel data, last character ignored")
	}
	for i := 0; i < items; i++ {
		value := string(chars[i*2 : i*2+2])
		if value == "00" {
			continue
		}
		result.Chart.Objects.Add(bms.Object{
			Channel:    channel,
			Measure:    measure,
			Fraction:   float64(i) / float64(items),
			Value:      value,
			LineNumber: lineNumber,
		})
	}
}

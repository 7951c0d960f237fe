// Package scoring decomposes the free-text play descriptions of a boxscore
// scoring table into structured scoring plays.
package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PlayType classifies a scoring play.
type PlayType string

const (
	Touchdown  PlayType = "touchdown"
	FieldGoal  PlayType = "field_goal"
	ExtraPoint PlayType = "extra_point"
	Safety     PlayType = "safety"
)

// Method is how the points were scored.
type Method string

const (
	MethodPass               Method = "pass"
	MethodRush               Method = "rush"
	MethodKick               Method = "kick"
	MethodKickoffReturn      Method = "kickoff_return"
	MethodPuntReturn         Method = "punt_return"
	MethodInterceptionReturn Method = "interception_return"
	MethodUnidentified       Method = "unidentified"
)

// Play is one structured scoring play. Yards is meaningful only when
// HasYards is set; Good only for extra points.
type Play struct {
	Quarter  int
	Team     string
	Type     PlayType
	Scorer   string
	Passer   string
	Method   Method
	Yards    int
	HasYards bool
	Good     bool
}

// ParseError is a typed failure for a detail string no pattern matched.
// Unparseable plays surface at import time instead of turning into nulls
// downstream.
type ParseError struct {
	Detail string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scoring: %s: %q", e.Reason, e.Detail)
}

// yardagePattern matches "<scorer> <N> yard <description>".
var yardagePattern = regexp.MustCompile(`^(.*?)\s+(\d+)\s+yard\s+(.*)$`)

// passerPattern pulls the passer out of a "pass from <name>" clause; the
// name stops at an opening parenthesis or the end of the string.
var passerPattern = regexp.MustCompile(`pass from\s+([^(]+)`)

// parenPattern captures the extra-point parenthetical, e.g. "(kick good)".
var parenPattern = regexp.MustCompile(`\(([^)]*)\)`)

// Parser turns scoring-table rows into plays, tracking quarter monotonicity
// across the table: the source site sometimes repeats header rows mid-table
// and a reported quarter lower than one already seen is a glitch, not a
// time machine.
type Parser struct {
	lastQuarter int
}

// NewParser creates a parser for one game's scoring table.
func NewParser() *Parser {
	return &Parser{}
}

// ParseRow parses one scoring-table row. A touchdown with a parenthetical
// extra-point attempt yields two plays.
func (p *Parser) ParseRow(quarter, team, detail string) ([]Play, error) {
	q := p.parseQuarter(quarter)

	detail = strings.TrimSpace(detail)
	if detail == "" {
		return nil, &ParseError{Detail: detail, Reason: "empty detail"}
	}

	m := yardagePattern.FindStringSubmatch(detail)
	if m == nil {
		return p.parseNonYardage(q, team, detail)
	}

	scorer := strings.TrimSpace(m[1])
	yards, _ := strconv.Atoi(m[2])
	// classify on the clause before the extra-point parenthetical, which
	// has its own kick/run/pass keywords
	desc := strings.TrimSpace(parenPattern.ReplaceAllString(m[3], ""))

	method := classifyMethod(desc)
	if method == MethodUnidentified {
		return nil, &ParseError{Detail: detail, Reason: "unidentified scoring method"}
	}

	play := Play{
		Quarter:  q,
		Team:     team,
		Scorer:   scorer,
		Method:   method,
		Yards:    yards,
		HasYards: true,
	}

	if method == MethodKick {
		play.Type = FieldGoal
		return []Play{play}, nil
	}

	play.Type = Touchdown
	if method == MethodPass {
		if pm := passerPattern.FindStringSubmatch(desc); pm != nil {
			play.Passer = strings.TrimSpace(pm[1])
		}
	}

	plays := []Play{play}
	if paren := parenPattern.FindStringSubmatch(detail); paren != nil {
		xp, err := parseConversion(q, team, paren[1])
		if err != nil {
			return nil, err
		}
		plays = append(plays, xp)
	}
	return plays, nil
}

// parseQuarter resolves a reported quarter with OT as 5 and a monotonic
// clamp on backward jumps.
func (p *Parser) parseQuarter(s string) int {
	q := p.lastQuarter
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OT":
		q = 5
	default:
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			q = n
		}
	}
	if q < p.lastQuarter {
		q = p.lastQuarter
	}
	p.lastQuarter = q
	return q
}

// parseNonYardage handles scores without a yardage clause. The only such
// score is a safety.
func (p *Parser) parseNonYardage(q int, team, detail string) ([]Play, error) {
	if strings.Contains(strings.ToLower(detail), "safety") {
		return []Play{{Quarter: q, Team: team, Type: Safety}}, nil
	}
	return nil, &ParseError{Detail: detail, Reason: "no yardage clause and not a safety"}
}

// classifyMethod classifies the description tail by keyword precedence:
// field goal first, then pass, rush, and return types.
func classifyMethod(desc string) Method {
	d := strings.ToLower(desc)
	switch {
	case strings.Contains(d, "field goal"):
		return MethodKick
	case strings.Contains(d, "pass"):
		return MethodPass
	case strings.Contains(d, "rush"), strings.Contains(d, "run"):
		return MethodRush
	case strings.Contains(d, "kickoff return"):
		return MethodKickoffReturn
	case strings.Contains(d, "punt return"):
		return MethodPuntReturn
	case strings.Contains(d, "interception return"):
		return MethodInterceptionReturn
	default:
		return MethodUnidentified
	}
}

// parseConversion parses the parenthetical extra-point attempt accompanying
// a touchdown, e.g. "kick good", "pass failed", "J. Smith pass from T. Jones".
func parseConversion(q int, team, content string) (Play, error) {
	lower := strings.ToLower(content)

	var method Method
	switch {
	case strings.Contains(lower, "kick"):
		method = MethodKick
	case strings.Contains(lower, "pass"):
		method = MethodPass
	case strings.Contains(lower, "run"), strings.Contains(lower, "rush"):
		method = MethodRush
	default:
		return Play{}, &ParseError{Detail: content, Reason: "unidentified conversion method"}
	}

	play := Play{
		Quarter: q,
		Team:    team,
		Type:    ExtraPoint,
		Method:  method,
		Good:    !strings.Contains(lower, "failed"),
	}

	if method == MethodPass {
		parts := strings.SplitN(content, "from", 2)
		scorer := strings.TrimSpace(parts[0])
		scorer = strings.TrimSpace(strings.TrimSuffix(scorer, "pass"))
		play.Scorer = scorer
		if len(parts) == 2 {
			passer := strings.TrimSpace(parts[1])
			passer = strings.TrimSpace(strings.TrimSuffix(passer, "failed"))
			passer = strings.TrimSpace(strings.TrimSuffix(passer, "good"))
			play.Passer = passer
		}
	}
	return play, nil
}

// Package websudoku fetches puzzles from websudoku.com. Pages carry the
// puzzle in hidden INPUT fields: the full solution digits ("cheat"), an edit
// mask ("editmask", '0' marking a shown clue), the difficulty level and the
// puzzle id.
package websudoku

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/madrury/sudoku-solver/internal/ports"
)

var (
	reMask   = regexp.MustCompile(`INPUT.+editmask.+VALUE="([0-1]+)"`)
	reDigits = regexp.MustCompile(`INPUT.+cheat.+VALUE="([0-9]+)"`)
	reLevel  = regexp.MustCompile(`INPUT.+level.+VALUE="([1-4])"`)
	reID     = regexp.MustCompile(`INPUT.+pid.+VALUE="([0-9]+)"`)
)

type Client struct {
	http *resty.Client
}

// NewClient builds a fetcher for the given base URL. The user agent matters:
// the site serves an error page to clients without one.
func NewClient(baseURL, userAgent string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetTimeout(30 * time.Second)
	return &Client{http: c}
}

// Fetch retrieves one puzzle at the given difficulty level (1..4) and
// converts it to the module's wire form, with the edit mask inverted into a
// clue mask ('1' = clue).
func (c *Client) Fetch(ctx context.Context, level int) (*ports.SourcePuzzle, error) {
	if level < 1 || level > 4 {
		return nil, fmt.Errorf("level %d out of range 1..4", level)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("level", strconv.Itoa(level)).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("fetch puzzle: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch puzzle: unexpected status %s", resp.Status())
	}
	return parsePage(resp.Body())
}

func parsePage(html []byte) (*ports.SourcePuzzle, error) {
	fields := map[string]*regexp.Regexp{
		"editmask": reMask,
		"cheat":    reDigits,
		"level":    reLevel,
		"pid":      reID,
	}
	got := make(map[string]string, len(fields))
	for name, re := range fields {
		m := re.FindSubmatch(html)
		if m == nil {
			return nil, fmt.Errorf("page is missing the %s field", name)
		}
		got[name] = string(m[1])
	}
	level, err := strconv.Atoi(got["level"])
	if err != nil {
		return nil, fmt.Errorf("bad level %q: %w", got["level"], err)
	}
	mask, err := clueMask(got["editmask"])
	if err != nil {
		return nil, err
	}
	return &ports.SourcePuzzle{
		Digits: got["cheat"],
		Mask:   mask,
		Level:  level,
		ID:     got["pid"],
	}, nil
}

// clueMask inverts websudoku's edit mask ('0' = shown) into the clue mask
// polarity used everywhere else in this module ('1' = clue).
func clueMask(editmask string) (string, error) {
	out := make([]byte, len(editmask))
	for i := 0; i < len(editmask); i++ {
		switch editmask[i] {
		case '0':
			out[i] = '1'
		case '1':
			out[i] = '0'
		default:
			return "", fmt.Errorf("bad editmask flag %q at position %d", editmask[i], i)
		}
	}
	return string(out), nil
}

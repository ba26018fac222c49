package metadata

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateCodeLayout  = "0601" // YYMM
	counterWidth    = 3
	MaxStockCounter = 999
)

// StockCode is the human readable stock identifier: a YYMM date code followed
// by a zero padded monthly counter, e.g. 2406001.
type StockCode struct {
	dateCode string
	counter  int
}

// DateCode returns the YYMM prefix shared by all stocks created in the month of t.
func DateCode(t time.Time) string {
	return t.Format(dateCodeLayout)
}

// NextStockCode derives the identifier following lastID within the month of
// now. An empty lastID starts the month at 001.
func NextStockCode(now time.Time, lastID string) (StockCode, error) {
	code := StockCode{dateCode: DateCode(now), counter: 1}

	if lastID != "" {
		last, err := ParseStockCode(lastID)
		if err != nil {
			return StockCode{}, err
		}
		if last.dateCode != code.dateCode {
			return StockCode{}, fmt.Errorf("stock id %s does not belong to date code %s", lastID, code.dateCode)
		}
		code.counter = last.counter + 1
	}

	if code.counter > MaxStockCounter {
		return StockCode{}, fmt.Errorf("stock id counter for %s exhausted", code.dateCode)
	}

	return code, nil
}

func ParseStockCode(id string) (StockCode, error) {
	if len(id) != len(dateCodeLayout)+counterWidth {
		return StockCode{}, fmt.Errorf("stock id %q must have %d digits", id, len(dateCodeLayout)+counterWidth)
	}
	if strings.Trim(id, "0123456789") != "" {
		return StockCode{}, fmt.Errorf("stock id %q must be numeric", id)
	}

	counter, err := strconv.Atoi(id[len(id)-counterWidth:])
	if err != nil {
		return StockCode{}, fmt.Errorf("stock id %q: %w", id, err)
	}

	return StockCode{dateCode: id[:len(dateCodeLayout)], counter: counter}, nil
}

func (s StockCode) DateCode() string {
	return s.dateCode
}

func (s StockCode) Counter() int {
	return s.counter
}

func (s StockCode) String() string {
	return fmt.Sprintf("%s%0*d", s.dateCode, counterWidth, s.counter)
}

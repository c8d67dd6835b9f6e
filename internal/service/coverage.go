package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/pabueco/woah/internal/model"
)

// CupCount is one entry of a coverage result.
type CupCount struct {
	Cup   model.Cup
	Count int
}

// Coverage is a combination of cups whose summed volume reaches or exceeds
// the requested amount, plus a ready-to-display phrase like
// "A normal bottle and a small cup".
type Coverage struct {
	Cups []CupCount
	Text string
}

// Total returns the summed volume of the coverage.
func (c Coverage) Total() int {
	total := 0
	for _, entry := range c.Cups {
		total += entry.Cup.Amount * entry.Count
	}
	return total
}

// CupsCoveringAmount runs CoverAmount against the merged cup catalog.
func (s *CatalogService) CupsCoveringAmount(ctx context.Context, amount float64) (Coverage, error) {
	cups, err := s.Cups(ctx)
	if err != nil {
		return Coverage{}, err
	}
	return CoverAmount(cups, amount)
}

// CoverAmount greedily picks cups until the amount is covered: each round
// takes the cup whose volume is closest to what is still missing, ties going
// to the first cup in iteration order. The result is not guaranteed minimal,
// but it is deterministic and terminates because every cup amount is
// positive. Amounts <= 0 yield an empty coverage; an empty cup list is an
// error since the loop could never finish.
func CoverAmount(cups []model.Cup, amount float64) (Coverage, error) {
	if amount <= 0 {
		return Coverage{}, nil
	}
	if len(cups) == 0 {
		return Coverage{}, ErrNoCupsAvailable
	}

	counts := make(map[string]int)
	var order []model.Cup

	remaining := amount
	for remaining > 0 {
		closest := cups[0]
		for _, cup := range cups[1:] {
			if math.Abs(float64(cup.Amount)-remaining) < math.Abs(float64(closest.Amount)-remaining) {
				closest = cup
			}
		}

		if counts[closest.ID] == 0 {
			order = append(order, closest)
		}
		counts[closest.ID]++
		remaining -= float64(closest.Amount)
	}

	result := Coverage{Cups: make([]CupCount, 0, len(order))}
	parts := make([]string, 0, len(order))
	for _, cup := range order {
		count := counts[cup.ID]
		result.Cups = append(result.Cups, CupCount{Cup: cup, Count: count})
		if count == 1 {
			parts = append(parts, "a "+cup.Name)
		} else {
			parts = append(parts, fmt.Sprintf("%d %s", count, cup.Name))
		}
	}
	result.Text = capitalize(strings.ToLower(joinConjunction(parts)))

	return result, nil
}

// joinConjunction joins phrases in natural-language list style:
// "a", "a and b", "a, b, and c".
func joinConjunction(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	runes := []rune(value)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

package matching

import (
	"strings"

	"baxpro/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Column references used by the rendered SQL. The recompute query aliases assets as a and
// activity_feed as af.
const (
	colPrice       = "af.price"
	colBottledYear = "a.bottled_year"
	colAge         = "a.age"

	nameLikeSQL   = "LOWER(REGEXP_REPLACE(a.name, ?, '', 'g')) LIKE ?"
	priceSetSQL   = colPrice + " IS NOT NULL"
	clauseJoinAND = " AND "
	clauseJoinOR  = " OR "
)

// Criteria is the filter part of an alert.
type Criteria struct {
	MatchStrings   []string
	MatchAll       bool
	MaxPrice       int
	BottledYearMin *int
	BottledYearMax *int
	AgeMin         *int
	AgeMax         *int
}

// CriteriaFromAlert extracts the filter fields of alert.
func CriteriaFromAlert(alert *entity.Alert) Criteria {
	return Criteria{
		MatchStrings:   alert.MatchStrings,
		MatchAll:       alert.MatchAll,
		MaxPrice:       alert.MaxPrice,
		BottledYearMin: alert.BottledYearMin,
		BottledYearMax: alert.BottledYearMax,
		AgeMin:         alert.AgeMin,
		AgeMax:         alert.AgeMax,
	}
}

// Clause is one conjunct of a predicate with its bound arguments.
type Clause struct {
	SQL  string
	Args []any
}

// Predicate is an ordered conjunction of clauses over an asset and its listing event.
type Predicate struct {
	criteria  Criteria
	fragments []string
	clauses   []Clause
}

// BuildPredicate translates criteria into clauses in a fixed order: price, bottled year, age,
// name, then the always-on non-null price check.
func BuildPredicate(c Criteria) *Predicate {
	p := &Predicate{
		criteria:  c,
		fragments: Fragments(c.MatchStrings),
	}

	p.clauses = append(p.clauses, Clause{SQL: colPrice + " <= ?", Args: []any{c.MaxPrice}})

	if clause, ok := rangeClause(colBottledYear, c.BottledYearMin, c.BottledYearMax); ok {
		p.clauses = append(p.clauses, clause)
	}
	if clause, ok := rangeClause(colAge, c.AgeMin, c.AgeMax); ok {
		p.clauses = append(p.clauses, clause)
	}
	if clause, ok := nameClause(p.fragments, c.MatchAll); ok {
		p.clauses = append(p.clauses, clause)
	}

	p.clauses = append(p.clauses, Clause{SQL: priceSetSQL})

	return p
}

func rangeClause(column string, minVal, maxVal *int) (Clause, bool) {
	switch {
	case minVal != nil && maxVal != nil:
		return Clause{SQL: column + " BETWEEN ? AND ?", Args: []any{*minVal, *maxVal}}, true
	case minVal != nil:
		return Clause{SQL: column + " >= ?", Args: []any{*minVal}}, true
	case maxVal != nil:
		return Clause{SQL: column + " <= ?", Args: []any{*maxVal}}, true
	default:
		return Clause{}, false
	}
}

func nameClause(fragments []string, matchAll bool) (Clause, bool) {
	if len(fragments) == 0 {
		return Clause{}, false
	}

	terms := make([]string, 0, len(fragments))
	args := make([]any, 0, 2*len(fragments))
	for _, f := range fragments {
		terms = append(terms, nameLikeSQL)
		args = append(args, NamePattern, "%"+f+"%")
	}

	sep := clauseJoinOR
	if matchAll {
		sep = clauseJoinAND
	}

	return Clause{SQL: "(" + strings.Join(terms, sep) + ")", Args: args}, true
}

// Empty reports whether the alert has no usable name fragment. An empty predicate matches nothing.
func (p *Predicate) Empty() bool {
	return len(p.fragments) == 0
}

// Clauses returns a copy of the conjuncts in evaluation order.
func (p *Predicate) Clauses() []Clause {
	return append([]Clause(nil), p.clauses...)
}

// Where renders the predicate as a SQL boolean expression with ? placeholders.
func (p *Predicate) Where() (string, []any) {
	parts := make([]string, 0, len(p.clauses))
	var args []any
	for _, c := range p.clauses {
		parts = append(parts, c.SQL)
		args = append(args, c.Args...)
	}

	return strings.Join(parts, clauseJoinAND), args
}

// Candidate is a single listing evaluated in memory.
type Candidate struct {
	Name        string
	BottledYear *int
	Age         *int
	Price       *decimal.Decimal
}

// CandidateFromListing flattens an incoming listing.
func CandidateFromListing(l *entity.Listing) Candidate {
	return Candidate{
		Name:        l.Name,
		BottledYear: l.BottledYear,
		Age:         l.Age,
		Price:       l.Price,
	}
}

// Matches evaluates the predicate against one candidate with the same semantics as Where.
func (p *Predicate) Matches(c Candidate) bool {
	if p.Empty() {
		return false
	}

	if c.Price == nil || c.Price.GreaterThan(decimal.NewFromInt(int64(p.criteria.MaxPrice))) {
		return false
	}
	if !inRange(c.BottledYear, p.criteria.BottledYearMin, p.criteria.BottledYearMax) {
		return false
	}
	if !inRange(c.Age, p.criteria.AgeMin, p.criteria.AgeMax) {
		return false
	}

	return p.nameMatches(c.Name)
}

func (p *Predicate) nameMatches(name string) bool {
	normalized := normalizedName(name)
	for _, f := range p.fragments {
		hit := strings.Contains(normalized, f)
		if p.criteria.MatchAll && !hit {
			return false
		}
		if !p.criteria.MatchAll && hit {
			return true
		}
	}

	return p.criteria.MatchAll
}

// inRange mirrors SQL semantics: a bound on a NULL value never holds.
func inRange(v, minVal, maxVal *int) bool {
	if minVal == nil && maxVal == nil {
		return true
	}
	if v == nil {
		return false
	}
	if minVal != nil && *v < *minVal {
		return false
	}
	if maxVal != nil && *v > *maxVal {
		return false
	}

	return true
}

// Package filters compiles the flat lead-listing query parameters into a
// structured squirrel expression the data layer can run as-is.
//
// Operator families and their merge rules:
//   - string fields: _equals is an exact match, _contains a case-insensitive
//     substring match; _contains wins when both are given.
//   - enum fields: _equals matches one value, _in any of a comma-separated
//     list. Values are never checked against the enum; an unknown value
//     simply matches nothing.
//   - numeric fields: _equals is exact; _gt/_lt are strict bounds and
//     _between an inclusive range, accumulated into one bound set with
//     _between overwriting the inclusive ends. Any bound replaces _equals.
//   - date fields: _on covers a calendar day, _after/_before are strict
//     bounds, _between runs through the end of the last day. Bounds merge
//     additively, later ones overwriting only the ends they set.
//   - is_qualified_equals: true/1/false/0, case-insensitive; anything else
//     is dropped.
//
// Values that fail to parse are dropped from the filter rather than turned
// into errors; the listing endpoint never rejects a query string.
package filters

import (
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/2HgO/erino-go/types/requests"
)

// Compile builds the filter conjunction for a listing request. The result
// never includes the owner constraint; callers conjoin that themselves.
func Compile(req *requests.ListLeadsRequest) sq.And {
	where := sq.And{}

	where = appendString(where, "email", req.EmailEquals, req.EmailContains)
	where = appendString(where, "company", req.CompanyEquals, req.CompanyContains)
	where = appendString(where, "city", req.CityEquals, req.CityContains)

	where = appendEnum(where, "status", req.StatusEquals, req.StatusIn)
	where = appendEnum(where, "source", req.SourceEquals, req.SourceIn)

	where = appendNumber(where, "score", req.ScoreEquals, req.ScoreGt, req.ScoreLt, req.ScoreBetween)
	where = appendNumber(where, "lead_value", req.LeadValueEquals, req.LeadValueGt, req.LeadValueLt, req.LeadValueBetween)

	where = appendDate(where, "created_at", req.CreatedAtOn, req.CreatedAtAfter, req.CreatedAtBefore, req.CreatedAtBetween)
	where = appendDate(where, "last_activity_at", req.LastActivityAtOn, req.LastActivityAtAfter, req.LastActivityAtBefore, req.LastActivityAtBetween)

	if req.IsQualifiedEquals != "" {
		switch strings.ToLower(req.IsQualifiedEquals) {
		case "true", "1":
			where = append(where, sq.Eq{"is_qualified": true})
		case "false", "0":
			where = append(where, sq.Eq{"is_qualified": false})
		}
	}

	return where
}

func appendString(where sq.And, field, equals, contains string) sq.And {
	// _contains overwrites _equals when both are present
	if contains != "" {
		return append(where, sq.Expr("LOWER("+field+") LIKE ?", "%"+strings.ToLower(contains)+"%"))
	}
	if equals != "" {
		return append(where, sq.Eq{field: equals})
	}
	return where
}

func appendEnum(where sq.And, field, equals, in string) sq.And {
	if in != "" {
		parts := strings.Split(in, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			values = append(values, strings.TrimSpace(p))
		}
		return append(where, sq.Eq{field: values})
	}
	if equals != "" {
		return append(where, sq.Eq{field: equals})
	}
	return where
}

type numberBounds struct {
	gt, lt, gte, lte *float64
}

func (b numberBounds) empty() bool {
	return b.gt == nil && b.lt == nil && b.gte == nil && b.lte == nil
}

func appendNumber(where sq.And, field, equals, gt, lt, between string) sq.And {
	bounds := numberBounds{}
	if v, err := strconv.ParseFloat(gt, 64); gt != "" && err == nil {
		bounds.gt = &v
	}
	if v, err := strconv.ParseFloat(lt, 64); lt != "" && err == nil {
		bounds.lt = &v
	}
	if between != "" {
		if parts := strings.Split(between, ","); len(parts) == 2 {
			a, errA := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			b, errB := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			// only applied when both ends parse
			if errA == nil && errB == nil {
				bounds.gte, bounds.lte = &a, &b
			}
		}
	}

	// any accumulated bound replaces _equals wholesale
	if !bounds.empty() {
		if bounds.gt != nil {
			where = append(where, sq.Gt{field: *bounds.gt})
		}
		if bounds.lt != nil {
			where = append(where, sq.Lt{field: *bounds.lt})
		}
		if bounds.gte != nil {
			where = append(where, sq.GtOrEq{field: *bounds.gte})
		}
		if bounds.lte != nil {
			where = append(where, sq.LtOrEq{field: *bounds.lte})
		}
		return where
	}

	if v, err := strconv.ParseFloat(equals, 64); equals != "" && err == nil {
		where = append(where, sq.Eq{field: v})
	}
	return where
}

type dateBounds struct {
	gt, lt, gte, lte *time.Time
}

func (b dateBounds) empty() bool {
	return b.gt == nil && b.lt == nil && b.gte == nil && b.lte == nil
}

func appendDate(where sq.And, field, on, after, before, between string) sq.And {
	bounds := dateBounds{}
	if d, ok := parseDate(on); ok {
		next := d.AddDate(0, 0, 1)
		bounds.gte, bounds.lt = &d, &next
	}
	if d, ok := parseDate(after); ok {
		bounds.gt = &d
	}
	if d, ok := parseDate(before); ok {
		bounds.lt = &d
	}
	if between != "" {
		if parts := strings.Split(between, ","); len(parts) == 2 {
			a, okA := parseDate(strings.TrimSpace(parts[0]))
			b, okB := parseDate(strings.TrimSpace(parts[1]))
			if okA && okB {
				end := endOfDay(b)
				bounds.gte, bounds.lte = &a, &end
			}
		}
	}

	if bounds.empty() {
		return where
	}
	if bounds.gt != nil {
		where = append(where, sq.Gt{field: *bounds.gt})
	}
	if bounds.lt != nil {
		where = append(where, sq.Lt{field: *bounds.lt})
	}
	if bounds.gte != nil {
		where = append(where, sq.GtOrEq{field: *bounds.gte})
	}
	if bounds.lte != nil {
		where = append(where, sq.LtOrEq{field: *bounds.lte})
	}
	return where
}

func parseDate(v string) (time.Time, bool) {
	if v == "" {
		return time.Time{}, false
	}
	if d, err := time.Parse("2006-01-02", v); err == nil {
		return d, true
	}
	if d, err := time.Parse(time.RFC3339, v); err == nil {
		return d.UTC(), true
	}
	return time.Time{}, false
}

// endOfDay expands a bound to 23:59:59.999 of its calendar day so a
// _between range is inclusive of the whole end day.
func endOfDay(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 59, 999_000_000, d.Location())
}

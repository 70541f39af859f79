// Package classify maps a column's name and declared type to a value
// generator through an ordered rule table. Name rules outrank type rules;
// the final rule matches everything, so classification is total and there
// is no "no mapping" error path.
package classify

import (
	"strings"

	"github.com/AleLoredo/datagen/internal/generate"
)

// Rule pairs a predicate over (column name, declared type) with the
// generator it selects. Predicates receive lower-cased inputs. Rules are
// evaluated in order; the first match wins.
type Rule struct {
	Name        string
	Description string
	Matches     func(name, dataType string) bool
	Bind        func(src *generate.Source) generate.ValueFunc
}

func nameHas(subs ...string) func(name, dataType string) bool {
	return func(name, _ string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

func typeHas(subs ...string) func(name, dataType string) bool {
	return func(_, dataType string) bool {
		for _, s := range subs {
			if strings.Contains(dataType, s) {
				return true
			}
		}
		return false
	}
}

var rules = []Rule{
	{
		Name:        "email",
		Description: "person email address",
		Matches:     nameHas("email"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.Email() }
		},
	},
	{
		Name:        "first_name",
		Description: "given name",
		Matches:     nameHas("first_name", "firstname"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.FirstName() }
		},
	},
	{
		Name:        "last_name",
		Description: "family name",
		Matches:     nameHas("last_name", "lastname"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.LastName() }
		},
	},
	{
		Name:        "full_name",
		Description: "full person name",
		Matches:     nameHas("name"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.FullName() }
		},
	},
	{
		Name:        "phone",
		Description: "phone number",
		Matches:     nameHas("phone", "tel"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.PhoneNumber() }
		},
	},
	{
		Name:        "address",
		Description: "street address",
		Matches:     nameHas("address"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.StreetAddress() }
		},
	},
	{
		Name:        "city",
		Description: "city name",
		Matches:     nameHas("city"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.City() }
		},
	},
	{
		Name:        "country",
		Description: "country name",
		Matches:     nameHas("country"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.Country() }
		},
	},
	{
		Name:        "postal_code",
		Description: "zip / postal code",
		Matches:     nameHas("zip", "postal"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.PostalCode() }
		},
	},
	{
		Name:        "company",
		Description: "company name",
		Matches:     nameHas("company"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.CompanyName() }
		},
	},
	{
		Name:        "datetime",
		Description: "timestamp formatted YYYY-MM-DD HH:MM:SS",
		Matches:     nameHas("date", "created_at", "updated_at"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.Timestamp() }
		},
	},
	{
		Name:        "money",
		Description: "decimal amount with two fractional digits",
		Matches:     nameHas("price", "amount", "salary"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.MoneyAmount() }
		},
	},
	{
		Name:        "lookup_fk",
		Description: "id_-prefixed column, small [1,10] range for lookup-table FKs",
		Matches: func(name, _ string) bool {
			return strings.HasPrefix(name, "id_") && name != "id_usuario" && name != "id"
		},
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.IntBetween(1, 10) }
		},
	},
	{
		Name:        "integer",
		Description: "integer in [1, 100000]",
		Matches:     typeHas("int"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.IntBetween(1, 100000) }
		},
	},
	{
		Name:        "float",
		Description: "float in [1, 1000000] with two decimals",
		Matches:     typeHas("float", "decimal", "numeric", "double"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.FloatBetween(1, 1000000) }
		},
	},
	{
		Name:        "text",
		Description: "single word",
		Matches:     typeHas("char", "text"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.Word() }
		},
	},
	{
		Name:        "boolean",
		Description: "true / false",
		Matches:     typeHas("bool", "bit"),
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.Bool() }
		},
	},
	{
		Name:        "word",
		Description: "single word (absolute fallback)",
		Matches:     func(_, _ string) bool { return true },
		Bind: func(s *generate.Source) generate.ValueFunc {
			return func() any { return s.Word() }
		},
	},
}

// Match returns the first rule matching the column. Inputs are lower-cased
// before evaluation; the fallback rule guarantees a result.
func Match(name, dataType string) Rule {
	lowName := strings.ToLower(name)
	lowType := strings.ToLower(dataType)
	for _, r := range rules {
		if r.Matches(lowName, lowType) {
			return r
		}
	}
	return rules[len(rules)-1]
}

// Classify binds the matching rule's generator to the given source.
func Classify(name, dataType string, src *generate.Source) generate.ValueFunc {
	return Match(name, dataType).Bind(src)
}

// RuleByName looks a rule up by its identifier, for config overrides and
// the list-rules command.
func RuleByName(name string) (Rule, bool) {
	for _, r := range rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

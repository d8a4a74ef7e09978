package models

import (
	"fmt"
	"sort"
)

// NNCost holds regression coefficients for one nearest-neighbour search
// variant: one sieve call in dimension x costs 2^(A·x + B).
type NNCost struct {
	A float64
	B float64
}

// Default nearest-neighbour variants.
const (
	NNClassical = "list_decoding-classical"
	NNQuantum   = "list_decoding-dw"
)

// nnAliases resolves the shorthand names accepted wherever a variant is.
var nnAliases = map[string]string{
	"classical": NNClassical,
	"quantum":   NNQuantum,
}

// nnCostTable compresses the gate counts of [AC:AGPS20], which cover
// dimensions up to 1024. These are fits, not asymptotic expressions.
var nnCostTable = map[string]NNCost{
	"all_pairs-classical":            {A: 0.4215069316613415, B: 20.1669683097337},
	"all_pairs-dw":                   {A: 0.3171724396445732, B: 25.29828951733785},
	"all_pairs-g":                    {A: 0.3155285835002801, B: 22.478746811528048},
	"all_pairs-ge19":                 {A: 0.3222895263943544, B: 36.11746438609666},
	"all_pairs-naive_classical":      {A: 0.4186251294633655, B: 9.899382654377058},
	"all_pairs-naive_quantum":        {A: 0.31401512556555794, B: 7.694659515948326},
	"all_pairs-t_count":              {A: 0.31553282515234704, B: 20.878594142502994},
	"list_decoding-classical":        {A: 0.2988026130564745, B: 26.011121212891872},
	"list_decoding-dw":               {A: 0.26944796385592995, B: 28.97237346443934},
	"list_decoding-g":                {A: 0.26937450988892553, B: 26.925140365395972},
	"list_decoding-ge19":             {A: 0.2695210400018704, B: 35.47132142280775},
	"list_decoding-naive_classical":  {A: 0.2973130399197453, B: 21.142124058689426},
	"list_decoding-naive_quantum":    {A: 0.2674316807758961, B: 18.720680589028465},
	"list_decoding-t_count":          {A: 0.26945736714156543, B: 25.913746774011887},
	"random_buckets-classical":       {A: 0.35586144233444716, B: 23.082527816636638},
	"random_buckets-dw":              {A: 0.30704199612690264, B: 25.581968903639485},
	"random_buckets-g":               {A: 0.30610964725102385, B: 22.928235564044563},
	"random_buckets-ge19":            {A: 0.31089687599538407, B: 36.02129978813208},
	"random_buckets-naive_classical": {A: 0.35448283789554513, B: 15.28878540793908},
	"random_buckets-naive_quantum":   {A: 0.30211421791887644, B: 11.151745013027089},
	"random_buckets-t_count":         {A: 0.30614770082829745, B: 21.41830142853265},
}

// ResolveNN maps an alias ("classical", "quantum") or a full variant name to
// the full name. The empty string resolves to NNClassical.
func ResolveNN(name string) (string, error) {
	if name == "" {
		return NNClassical, nil
	}
	if full, ok := nnAliases[name]; ok {
		name = full
	}
	if _, ok := nnCostTable[name]; !ok {
		return "", fmt.Errorf("%w %q (available: %v)", ErrUnknownNNVariant, name, NNVariants())
	}
	return name, nil
}

// LookupNN returns the coefficients of a variant, resolving aliases.
func LookupNN(name string) (NNCost, error) {
	full, err := ResolveNN(name)
	if err != nil {
		return NNCost{}, err
	}
	return nnCostTable[full], nil
}

// NNVariants lists the full variant names in sorted order.
func NNVariants() []string {
	names := make([]string, 0, len(nnCostTable))
	for k := range nnCostTable {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

package target

import "sort"

// Key identifies one physical install variant directory (_<key>_).
type Key string

// Install variant keys.
const (
	KeyRetail          Key = "retail"
	KeyPTR             Key = "ptr"
	KeyXPTR            Key = "xptr"
	KeyBeta            Key = "beta"
	KeyAlpha           Key = "alpha"
	KeyClassic         Key = "classic"
	KeyClassicEra      Key = "classic_era"
	KeyClassicPTR      Key = "classic_ptr"
	KeyClassicEraPTR   Key = "classic_era_ptr"
	KeyClassicBeta     Key = "classic_beta"
	KeyClassicEraBeta  Key = "classic_era_beta"
	KeyClassicAlpha    Key = "classic_alpha"
	KeyClassicEraAlpha Key = "classic_era_alpha"
)

type cell struct {
	flavor  Flavor
	channel Channel
}

// table holds the keys each (flavor, channel) pair installs into.
var table = map[cell][]Key{
	{Mainline, Live}:  {KeyRetail},
	{Mainline, PTR}:   {KeyPTR, KeyXPTR},
	{Mainline, Beta}:  {KeyBeta},
	{Mainline, Alpha}: {KeyAlpha},
	{Classic, Live}:   {KeyClassic, KeyClassicEra},
	{Classic, PTR}:    {KeyClassicPTR, KeyClassicEraPTR},
	{Classic, Beta}:   {KeyClassicBeta, KeyClassicEraBeta},
	{Classic, Alpha}:  {KeyClassicAlpha, KeyClassicEraAlpha},
}

// KeysFor returns the keys of a single table cell. Unknown pairs yield nil.
func KeysFor(f Flavor, c Channel) []Key {
	keys := table[cell{f, c}]
	if keys == nil {
		return nil
	}
	return append([]Key(nil), keys...)
}

// KeySet is an immutable set of keys.
type KeySet struct {
	keys map[Key]struct{}
}

// Contains reports whether k is in the set.
func (s KeySet) Contains(k Key) bool {
	_, ok := s.keys[k]
	return ok
}

// Len returns the number of keys.
func (s KeySet) Len() int {
	return len(s.keys)
}

// Sorted returns the keys ordered by name.
func (s KeySet) Sorted() []Key {
	out := make([]Key, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Select unions the table cells of every selected pair. It has no side effects.
func Select(sel Selection) KeySet {
	sel = NewSelection(sel.Flavors, sel.Channels)
	set := KeySet{keys: make(map[Key]struct{})}
	for _, f := range sel.Flavors {
		for _, c := range sel.Channels {
			for _, k := range table[cell{f, c}] {
				set.keys[k] = struct{}{}
			}
		}
	}
	return set
}

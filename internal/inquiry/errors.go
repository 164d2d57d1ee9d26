package inquiry

import (
	"sort"
	"strings"
)

// Errors maps a field name to its validation message.
type Errors map[string]string

// OK reports whether there are no errors.
func (e Errors) OK() bool { return len(e) == 0 }

// Error joins messages in field order so Errors can be returned as an error.
func (e Errors) Error() string {
	order := map[string]int{FieldName: 0, FieldEmail: 1, FieldCompany: 2, FieldMessage: 3, FieldType: 4}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return order[keys[i]] < order[keys[j]] })
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e[k])
	}
	return strings.Join(msgs, "; ")
}

package classfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// field is a member of a JSON object.
type field struct {
	key   string
	value any
}

// marshalObject encodes fields as a single JSON object, keeping their order.
func marshalObject(fields ...field) ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range fields {
		val, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("cannot encode %q: %w", f.key, err)
		}
		if i > 0 {
			b.WriteByte(',')
		}
		key, _ := json.Marshal(f.key)
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

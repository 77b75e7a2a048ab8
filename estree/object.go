// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package estree

import (
	"bytes"
	"encoding/json"
)

// Object is a JSON object whose keys are kept in insertion order.
//
// [Encode] produces trees of Object, []any, string, bool, nil and numbers;
// Object marshals with its keys in the order they were added, which for
// nodes is "type" first and then the ESTree field order.
type Object []Member

// Member is a single key-value pair of an [Object].
type Member struct {
	Key   string
	Value any
}

// Get returns the value for key.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Type returns the "type" field of o, if it is a string.
func (o Object) Type() string {
	v, _ := o.Get("type")
	s, _ := v.(string)
	return s
}

// Map converts o, and any Objects it contains, into plain maps, which is
// the shape [Decode] accepts.
func (o Object) Map() map[string]any {
	m := make(map[string]any, len(o))
	for _, member := range o {
		m[member.Key] = plain(member.Value)
	}
	return m
}

func plain(v any) any {
	switch v := v.(type) {
	case Object:
		return v.Map()
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON implements [json.Marshaler].
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

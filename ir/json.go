// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"encoding/json"
	"fmt"
)

// jsonNode is the kind-tagged envelope used to (de)serialize the
// [Node] union.
type jsonNode struct {
	Kind string          `json:"kind"`
	Node json.RawMessage `json:"node"`
}

// MarshalJSON implements [json.Marshaler], wrapping each node in a
// kind-tagged envelope so the union survives a round trip.
func (s Scene) MarshalJSON() ([]byte, error) {
	env := make([]jsonNode, len(s))
	for i, n := range s {
		raw, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		env[i] = jsonNode{Kind: n.Kind().String(), Node: raw}
	}
	return json.Marshal(env)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *Scene) UnmarshalJSON(data []byte) error {
	var env []jsonNode
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if env == nil {
		*s = nil
		return nil
	}
	out := make(Scene, len(env))
	for i, jn := range env {
		n, err := unmarshalNode(jn)
		if err != nil {
			return err
		}
		out[i] = n
	}
	*s = out
	return nil
}

func unmarshalNode(jn jsonNode) (Node, error) {
	var n Node
	switch jn.Kind {
	case "path":
		n = &Path{}
	case "rectangle":
		n = &Rectangle{}
	case "circle":
		n = &Circle{}
	case "ellipse":
		n = &Ellipse{}
	case "text-frame":
		n = &TextFrame{}
	case "rich-text-frame":
		n = &RichTextFrame{}
	case "group":
		n = &Group{}
	case "image":
		n = &Image{}
	default:
		return nil, fmt.Errorf("ir: unknown node kind %q", jn.Kind)
	}
	if err := json.Unmarshal(jn.Node, n); err != nil {
		return nil, err
	}
	return n, nil
}

// WriteJSON serializes the scene to indented JSON.
func (s Scene) WriteJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ReadJSON deserializes a scene from JSON produced by [Scene.WriteJSON]
// or [Scene.MarshalJSON].
func ReadJSON(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

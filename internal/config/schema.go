/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var schema = gojsonschema.NewBytesLoader(schemaJSON)

// ErrInvalid reports a configuration map that does not satisfy the schema.
var ErrInvalid = errors.New("configuration invalid")

// SchemaError lists every schema violation of a configuration map.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("config: %d schema violation(s): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *SchemaError) Unwrap() error { return ErrInvalid }

// Validate checks m against the embedded JSON schema. A missing top-level key
// is reported as a *KeyError wrapping ErrKeyMissing so callers can fail fast
// on a broken defaults contract; other violations yield a *SchemaError.
func Validate(m Map) error {
	res, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(map[string]any(m)))
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if res.Valid() {
		return nil
	}
	var problems []string
	for _, re := range res.Errors() {
		if re.Type() == "required" && re.Context().String() == "(root)" {
			if key, ok := re.Details()["property"].(string); ok {
				return &KeyError{Key: key, Want: "value", Err: ErrKeyMissing}
			}
		}
		problems = append(problems, re.String())
	}
	return &SchemaError{Problems: problems}
}

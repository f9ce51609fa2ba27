// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Field is a single named value within a record.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered sequence of named values, written either as aligned
// "key: value" lines for a human reader, or as a flat JSON object.
type Record struct {
	fields []Field
}

// NewRecord constructs an empty record.
func NewRecord() *Record {
	return &Record{}
}

// Add appends a named value to this record.
func (r *Record) Add(key string, value string) *Record {
	r.fields = append(r.fields, Field{key, value})
	return r
}

// Fields returns the fields of this record, in the order they were added.
func (r *Record) Fields() []Field {
	return r.fields
}

// IsTerminal determines whether a given writer is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	//
	return false
}

// Write this record to a given writer.  Text is used when the writer is a
// terminal and JSON is not forced, otherwise JSON is used.
func (r *Record) Write(w io.Writer, forceJSON bool) error {
	if !forceJSON && IsTerminal(w) {
		return r.WriteText(w, true)
	}
	//
	return r.WriteJSON(w)
}

// WriteText writes this record as aligned "key: value" lines, optionally
// highlighting the keys.
func (r *Record) WriteText(w io.Writer, highlight bool) error {
	var (
		width int
		start string
		end   string
	)
	//
	for _, f := range r.fields {
		width = max(width, len(f.Key))
	}
	//
	if highlight {
		start = BoldAnsiEscape().FgColour(TERM_CYAN).Build()
		end = ResetAnsiEscape().Build()
	}
	//
	for _, f := range r.fields {
		padding := strings.Repeat(" ", width-len(f.Key))
		//
		if _, err := fmt.Fprintf(w, "%s%s%s:%s %s\n", start, f.Key, end, padding, f.Value); err != nil {
			return err
		}
	}
	//
	return nil
}

// WriteJSON writes this record as a JSON object whose keys appear in the order
// they were added.
func (r *Record) WriteJSON(w io.Writer) error {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, f := range r.fields {
		key, err := json.Marshal(f.Key)
		if err != nil {
			return err
		}
		//
		value, err := json.Marshal(f.Value)
		if err != nil {
			return err
		}
		//
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.Write(key)
		builder.WriteString(":")
		builder.Write(value)
	}
	//
	builder.WriteString("}\n")
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

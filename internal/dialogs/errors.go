/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package dialogs

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFieldsSelected rejects a bulk-convert commit that restricts
	// conversion to fields but selects none.
	ErrNoFieldsSelected = errors.New("no fields selected")
	// ErrInvalidState is returned when a session method is called out of lifecycle order.
	ErrInvalidState = errors.New("invalid dialog state")
)

// ValidationError is a recoverable commit failure: the dialog stays open and
// the configuration is left untouched.
type ValidationError struct {
	Title   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Notifier surfaces a message to the user.
type Notifier interface {
	Notify(title, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, message string)

func (f NotifierFunc) Notify(title, message string) { f(title, message) }

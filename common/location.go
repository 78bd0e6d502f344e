/*
 * declcheck - Declaration checking for a language with generics and interfaces
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

// LocationID is the canonical identifier of a location.
type LocationID string

// Location describes the origin of a module.
type Location interface {
	ID() LocationID
	String() string
}

// HasLocation is implemented by errors which occurred in a specific location.
type HasLocation interface {
	ImportLocation() Location
}

// StringLocation

type StringLocation string

var _ Location = StringLocation("")

func (l StringLocation) ID() LocationID {
	return LocationID(l)
}

func (l StringLocation) String() string {
	return string(l)
}

// LocationsMatch returns true if both locations are nil,
// or if both have the same ID.
func LocationsMatch(first, second Location) bool {
	if first == nil || second == nil {
		return first == nil && second == nil
	}
	return first.ID() == second.ID()
}

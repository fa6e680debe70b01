/*
 * Copyright (c) 2025, Ember Auth Project.
 *
 * The Ember Auth Project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package utils provides utility functions for database operations.
package utils

import (
	"fmt"
	"strings"
	"time"
)

const customTimeFormat = "2006-01-02 15:04:05.999999999"

// ParseTimeField parses a time column value returned by the database.
// Postgres returns time.Time; SQLite returns the raw string.
func ParseTimeField(field interface{}, fieldName string) (time.Time, error) {
	switch v := field.(type) {
	case string:
		parsedTime, err := time.Parse(customTimeFormat, trimTimeString(v))
		if err != nil {
			return time.Time{}, fmt.Errorf("error parsing %s: %w", fieldName, err)
		}
		return parsedTime, nil
	case time.Time:
		return v, nil
	default:
		return time.Time{}, fmt.Errorf("unexpected type for %s", fieldName)
	}
}

// ParseNullableTimeField parses a time column value that may be NULL.
// A nil column value yields a nil time.
func ParseNullableTimeField(field interface{}, fieldName string) (*time.Time, error) {
	if field == nil {
		return nil, nil
	}
	parsedTime, err := ParseTimeField(field, fieldName)
	if err != nil {
		return nil, err
	}
	return &parsedTime, nil
}

// trimTimeString retains only the date and time parts of a time string.
func trimTimeString(timeStr string) string {
	parts := strings.SplitN(timeStr, " ", 3)
	if len(parts) >= 2 {
		return parts[0] + " " + parts[1]
	}
	return timeStr
}

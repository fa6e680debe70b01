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

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeField_StringInput(t *testing.T) {
	expected, _ := time.Parse("2006-01-02 15:04:05.999999999", "2026-09-01 10:30:45.123456789")

	result, err := ParseTimeField("2026-09-01 10:30:45.123456789", "expires_at")
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestParseTimeField_StringWithTimezoneSuffix(t *testing.T) {
	expected, _ := time.Parse("2006-01-02 15:04:05.999999999", "2026-09-01 10:30:45.123456789")

	result, err := ParseTimeField("2026-09-01 10:30:45.123456789 +0000 UTC", "expires_at")
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestParseTimeField_TimeInput(t *testing.T) {
	now := time.Now()

	result, err := ParseTimeField(now, "expires_at")
	assert.NoError(t, err)
	assert.Equal(t, now, result)
}

func TestParseTimeField_InvalidString(t *testing.T) {
	_, err := ParseTimeField("not a time", "expires_at")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expires_at")
}

func TestParseTimeField_UnexpectedType(t *testing.T) {
	_, err := ParseTimeField(42, "expires_at")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected type")
}

func TestParseNullableTimeField_Nil(t *testing.T) {
	result, err := ParseNullableTimeField(nil, "expires_at")
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestParseNullableTimeField_Value(t *testing.T) {
	now := time.Now()

	result, err := ParseNullableTimeField(now, "expires_at")
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, now, *result)
}

func TestParseNullableTimeField_InvalidValue(t *testing.T) {
	result, err := ParseNullableTimeField("garbage", "expires_at")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestTrimTimeString(t *testing.T) {
	assert.Equal(t, "2026-09-01 10:30:45.123",
		trimTimeString("2026-09-01 10:30:45.123 +0000 UTC"))
	assert.Equal(t, "2026-09-01", trimTimeString("2026-09-01"))
}

// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToBool(t *testing.T) {
	testCases := []struct {
		name  string
		value Value
		want  bool
	}{
		{name: "Y", value: Text("Y"), want: true},
		{name: "yes", value: Text("yes"), want: true},
		{name: "TRUE", value: Text("TRUE"), want: true},
		{name: "1", value: Text("1"), want: true},
		{name: "n", value: Text("n"), want: false},
		{name: "no", value: Text("no"), want: false},
		{name: "false", value: Text("false"), want: false},
		{name: "0", value: Text("0"), want: false},
		{name: "maybe", value: Text("maybe"), want: false},
		{name: "empty text", value: Text(""), want: false},
		{name: "bool true", value: Bool(true), want: true},
		{name: "bool false", value: Bool(false), want: false},
		{name: "int 1", value: Int(1), want: true},
		{name: "int 2", value: Int(2), want: false},
		{name: "int 0", value: Int(0), want: false},
		{name: "int -1", value: Int(-1), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToBool(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	unsupported := []struct {
		name  string
		value Value
	}{
		{name: "float", value: ValueOf(1.0)},
		{name: "object", value: ValueOf(map[string]any{"a": 1})},
		{name: "nil", value: ValueOf(nil)},
	}

	for _, tc := range unsupported {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToBool(tc.value)

			var uerr UnsupportedTypeError
			require.ErrorAs(t, err, &uerr)
			require.Equal(t, KindOther, uerr.Kind)
			require.Equal(t, "bool", uerr.Target)
		})
	}
}

func TestToInt(t *testing.T) {
	testCases := []struct {
		name  string
		value Value
		want  int
	}{
		{name: "text", value: Text("42"), want: 42},
		{name: "text with whitespace", value: Text(" -7 "), want: -7},
		{name: "bool true", value: Bool(true), want: 1},
		{name: "bool false", value: Bool(false), want: 0},
		{name: "int", value: Int(5432), want: 5432},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToInt(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("returns a coercion error for non numeric text", func(t *testing.T) {
		_, err := ToInt(Text("abc"))

		var cerr TypeCoercionError
		require.ErrorAs(t, err, &cerr)
		require.ErrorIs(t, err, strconv.ErrSyntax)
		require.Equal(t, "int", cerr.Target)
	})

	t.Run("returns an unsupported type error for other values", func(t *testing.T) {
		_, err := ToInt(ValueOf(3.5))

		var uerr UnsupportedTypeError
		require.ErrorAs(t, err, &uerr)
	})
}

func TestToString(t *testing.T) {
	testCases := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "text", value: Text("hello"), want: "hello"},
		{name: "bool", value: Bool(true), want: "true"},
		{name: "int", value: Int(-3), want: "-3"},
		{name: "float", value: ValueOf(1.5), want: "1.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToString(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestToFloat64(t *testing.T) {
	testCases := []struct {
		name  string
		value Value
		want  float64
	}{
		{name: "text", value: Text("0.25"), want: 0.25},
		{name: "int", value: Int(2), want: 2},
		{name: "float64", value: ValueOf(1.5), want: 1.5},
		{name: "float32", value: ValueOf(float32(0.5)), want: 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToFloat64(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("returns an unsupported type error for bools", func(t *testing.T) {
		_, err := ToFloat64(Bool(true))

		var uerr UnsupportedTypeError
		require.ErrorAs(t, err, &uerr)
		require.Equal(t, KindBool, uerr.Kind)
	})
}

func TestToDuration(t *testing.T) {
	testCases := []struct {
		name  string
		value Value
		want  time.Duration
	}{
		{name: "text", value: Text("1m30s"), want: 90 * time.Second},
		{name: "int nanoseconds", value: Int(int64(time.Millisecond)), want: time.Millisecond},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToDuration(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("returns a coercion error for invalid text", func(t *testing.T) {
		_, err := ToDuration(Text("soon"))

		var cerr TypeCoercionError
		require.ErrorAs(t, err, &cerr)
	})
}

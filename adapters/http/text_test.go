package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidTextOffset(t *testing.T) {
	for _, tc := range []struct {
		name string
		body string
		want int
	}{
		{name: "plain", body: `{"value":"15555555555"}`, want: -1},
		{name: "multibyte", body: `{"value":"北京市朝阳区"}`, want: -1},
		{name: "bmp escape", body: `{"value":"\u5317"}`, want: -1},
		{name: "pair", body: `{"value":"\ud83d\ude00"}`, want: -1},
		{name: "escaped quote and backslash", body: `{"value":"\"\\"}`, want: -1},
		{name: "escaped quote keeps string open", body: `{"a":"\"\ud800"}`, want: 8},
		{name: "escaped backslash before u", body: `{"value":"\\ud800"}`, want: -1},
		{name: "bad hex left to decoder", body: `{"value":"\uzzzz"}`, want: -1},
		{name: "invalid byte", body: "{\"value\":\"a\xffb\"}", want: 11},
		{name: "truncated sequence", body: "{\"value\":\"\xe5\x8c\"}", want: 10},
		{name: "lone high", body: `{"value":"\ud800"}`, want: 10},
		{name: "high at end of body", body: `"\ud800`, want: 1},
		{name: "high then other escape", body: `{"value":"\ud800\n"}`, want: 10},
		{name: "high then high", body: `{"value":"\ud800\ud800"}`, want: 10},
		{name: "lone low", body: `{"value":"ab\udfff"}`, want: 12},
		{name: "second pair broken", body: `{"value":"\ud83d\ude00\udc00"}`, want: 22},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, invalidTextOffset([]byte(tc.body)))
		})
	}
}

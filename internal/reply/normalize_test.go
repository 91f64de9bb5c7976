package reply_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/dinolingo-lambda/internal/reply"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1, 2]\n```", "[1, 2]"},
		{"upper case tag", "```JSON {\"a\":1} ```", `{"a":1}`},
		{"surrounding whitespace", "\n\t  ```json\n{}\n```  \n", "{}"},
		{"opening fence only", "```json\n{\"a\":1}", `{"a":1}`},
		{"closing fence only", "{\"a\":1}\n```", `{"a":1}`},
		{"no fences", `  {"a": 1}  `, `{"a": 1}`},
		{"word starting with json kept", "```jsonify```", "jsonify"},
		{"stacked fences", "``````json{}```", "{}"},
		{"fence only", "```", ""},
		{"empty", "", ""},
		{"broken json untouched", "```json\n{\"a\":\n```", `{"a":`},
		{"prose", "Bonjour ! Comment ça va ?", "Bonjour ! Comment ça va ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reply.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\":1}\n```",
		"``````json{}```",
		"```\n```json\n[]\n```\n```",
		"```json json```",
		"``` ```` ```",
		"json```",
		"  plain text  ",
		"`````",
		"```jsonx\n{}\n```",
	}

	for _, in := range inputs {
		once := reply.Normalize(in)
		assert.Equal(t, once, reply.Normalize(once), "input %q", in)
	}
}

func TestNormalize_PlainJSONIsTrimOnly(t *testing.T) {
	for _, s := range []string{
		`{"exercise_list": []}`,
		"\n  [1, 2, 3]\n",
		`"just a sentence"`,
	} {
		assert.Equal(t, strings.TrimSpace(s), reply.Normalize(s))
	}
}

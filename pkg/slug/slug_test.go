// Copyright (c) 2026 Inkpost. All rights reserved.
// Author: h.m.tran.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmtran/inkpost/pkg/slug"
)

/*
TestFrom covers the slug transformation pipeline end to end.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "My First Post", "my-first-post"},
		{"accents_removed", "Héllo Wörld", "hello-world"},
		{"punctuation_collapsed", "Go, Redis & Postgres!", "go-redis-postgres"},
		{"hyphens_trimmed", "  --Already--Hyphenated--  ", "already-hyphenated"},
		{"digits_kept", "Top 10 Tips", "top-10-tips"},
		{"empty_input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

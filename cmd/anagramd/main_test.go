package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vanaluk/anagram-chain/chain"
	"github.com/vanaluk/anagram-chain/config"
	"github.com/vanaluk/anagram-chain/engine"
)

func TestTrimTrailing(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc\r\n", "abc"},
		{"abc \t", "abc"},
		{"abc", "abc"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(trimTrailing([]byte(tt.in))))
	}
}

func TestRenderResultNoChains(t *testing.T) {
	e := engine.New(config.Host)
	e.Build()

	var buf bytes.Buffer
	renderResultTo(&buf, e, chain.Result{})
	assert.Equal(t, "No chains found.\n", buf.String())
}

func TestRenderResultWithChains(t *testing.T) {
	e := engine.New(config.Host)
	_, _ = e.Load([]byte("abc"))
	_, _ = e.Load([]byte("abcd"))
	e.Build()

	res := e.FindLongest([]byte("abc"))

	var buf bytes.Buffer
	renderResultTo(&buf, e, res)
	assert.Equal(t, "Found 1 chain(s) of length 2:\nabc->abcd\n", buf.String())
}

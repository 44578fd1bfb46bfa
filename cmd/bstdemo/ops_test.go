package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestParseValues(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		in       string
		expected []int
	}{
		{"", nil},
		{"5", []int{5}},
		{"50,10, 2 ,75", []int{50, 10, 2, 75}},
		{"-3,,4,", []int{-3, 4}},
	}
	for _, test := range tests {
		values, err := parseValues(test.in)
		assert.NoError(err, "parseValues(%q)", test.in)
		assert.Equal(test.expected, values, "parseValues(%q)", test.in)
	}

	_, err := parseValues("1,two")
	assert.ErrorContains(err, `invalid value "two"`)
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	v := viper.New()
	v.Set("insert", "50,10,2")
	v.Set("find", "10")
	v.Set("style", "connected")
	cfg, err := loadConfig(v)
	if assert.NoError(err) {
		assert.Equal([]int{50, 10, 2}, cfg.Insert)
		assert.Equal([]int{10}, cfg.Find)
		assert.Nil(cfg.Remove)
		assert.Equal("connected", cfg.Style)
	}

	v = viper.New()
	_, err = loadConfig(v)
	assert.Error(err, "insert is required")

	v.Set("insert", "1")
	v.Set("remove", "x")
	_, err = loadConfig(v)
	assert.ErrorContains(err, "remove")
}

func TestApply(t *testing.T) {
	assert := assert.New(t)

	tree := build([]int{20, 10, 30, 5, 15})
	cfg := &Config{
		Find:   []int{15, 99},
		Remove: []int{20, 42},
	}
	tree, results := apply(tree, cfg)
	assert.Equal("((5 10 _) 15 30)", tree.String())

	if assert.Len(results, 4) {
		assert.Equal("find", results[0].Op)
		assert.True(results[0].Found)
		assert.Equal("15", results[0].Tree)

		assert.False(results[1].Found)
		assert.Equal("<nil>", results[1].Tree)

		assert.Equal("remove", results[2].Op)
		assert.True(results[2].Found)
		assert.False(results[3].Found, "42 was never inserted")
		assert.Equal(results[2].Tree, results[3].Tree)
	}
}

func TestApplyEmptiesTree(t *testing.T) {
	assert := assert.New(t)

	tree, results := apply(build([]int{30, 10}), &Config{Remove: []int{10, 30, 30}})
	assert.Nil(tree)
	if assert.Len(results, 3) {
		assert.Equal("30", results[0].Tree)
		assert.Equal("<nil>", results[1].Tree)
		assert.False(results[2].Found)
	}
}

package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"datastructures/bst"
	"datastructures/internal/render"
)

func parseValues(s string) ([]int, error) {
	var values []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", field)
		}
		values = append(values, v)
	}
	return values, nil
}

// build creates a tree from values in order. values must not be empty.
func build(values []int) *bst.Tree[int] {
	tree := bst.New(values[0])
	log.Debugf("new tree with root %d", values[0])
	for _, v := range values[1:] {
		tree.Insert(v)
		log.Debugf("insert %d: %v", v, tree)
	}
	return tree
}

// apply runs every find and then every remove against tree, returning the
// final tree (nil if it was emptied) and one result per operation.
func apply(tree *bst.Tree[int], cfg *Config) (*bst.Tree[int], []render.Result) {
	var results []render.Result
	for _, v := range cfg.Find {
		found := tree.Find(v)
		log.WithField("value", v).Debugf("find: %v", found)
		results = append(results, render.Result{
			Op:    "find",
			Value: v,
			Found: found != nil,
			Tree:  found.String(),
		})
	}
	for _, v := range cfg.Remove {
		present := tree.Contains(v)
		tree = tree.Remove(v)
		log.WithField("value", v).Debugf("remove: %v", tree)
		if tree == nil {
			log.Infof("tree emptied by removing %d", v)
		}
		results = append(results, render.Result{
			Op:    "remove",
			Value: v,
			Found: present,
			Tree:  tree.String(),
		})
	}
	return tree, results
}

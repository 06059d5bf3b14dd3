/*
 * Copyright (c) 2024-present The sdmx-go authors.
 */

package urn

import (
	lruPkg "github.com/hashicorp/golang-lru/v2"
)

// Size of the LRU cache, raw URN string -> parsed URN.
const parseCacheSize = 4096

var parseCache = newParseCache()

func newParseCache() *lruPkg.Cache[string, URN] {
	c, err := lruPkg.New[string, URN](parseCacheSize)
	if err != nil {
		// lru.New fails on a non-positive size only
		panic(err)
	}
	return c
}

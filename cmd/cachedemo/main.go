// Command cachedemo exercises a persistent string cache: it loads the
// backing file when present, performs a few puts that overflow the
// capacity, and saves the surviving entries back.
package main

import (
	"flag"
	"log"

	lru "github.com/Barvoziker/cacheLRU"
	"github.com/Barvoziker/cacheLRU/simplelru"
)

func main() {
	file := flag.String("file", "cache.txt", "backing file for the cache")
	capacity := flag.Int("capacity", 3, "maximum number of entries")
	flag.Parse()

	c, err := lru.NewPersistent[string, string](*capacity, *file, simplelru.StringCodec())
	if err != nil {
		log.Fatalf("create cache: %v", err)
	}
	log.Printf("loaded %d entries from %s", c.Len(), *file)

	c.Add("A", "value_a")
	c.Add("B", "value_b")
	c.Add("C", "value_c")
	c.Add("D", "value_d")

	log.Printf("keys (MRU->LRU): %v", c.Keys())
	if _, ok := c.Get("A"); !ok {
		log.Println("GET A: missing (evicted as LRU)")
	}

	if err := c.Save(); err != nil {
		log.Fatalf("save cache: %v", err)
	}
	log.Printf("cache saved to %s", *file)
}

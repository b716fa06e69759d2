package cache

import (
	"github.com/scalalang2/golang-fifo/s3fifo"
)

type s3fifoCache struct {
	c *s3fifo.S3FIFO[int, string]
}

func NewS3FIFO(capacity int) Cache {
	return &s3fifoCache{c: s3fifo.New[int, string](capacity, 0)}
}

func (c *s3fifoCache) Get(key int) (string, bool) {
	return c.c.Get(key)
}

func (c *s3fifoCache) Set(key int, value string) {
	c.c.Set(key, value)
}

func (c *s3fifoCache) Name() string {
	return "s3-fifo"
}

func (c *s3fifoCache) Close() {}

package cache

import "github.com/Yiling-J/theine-go"

type theineCache struct {
	c *theine.Cache[int, string]
}

func NewTheine(capacity int) Cache {
	c, _ := theine.NewBuilder[int, string](int64(capacity)).Build()
	return &theineCache{c: c}
}

func (c *theineCache) Get(key int) (string, bool) {
	return c.c.Get(key)
}

func (c *theineCache) Set(key int, value string) {
	c.c.Set(key, value, 1)
}

func (c *theineCache) Name() string {
	return "theine"
}

func (c *theineCache) Close() {
	c.c.Close()
}

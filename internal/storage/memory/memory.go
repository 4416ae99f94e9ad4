package storage

import (
	"github.com/patrickmn/go-cache"
)

// Client хранилище в памяти процесса. Записи не истекают:
// это аналог локального хранилища браузера, а не кеш.
type Client struct {
	*cache.Cache
}

func NewClient() *Client {
	return &Client{
		Cache: cache.New(cache.NoExpiration, 0),
	}
}

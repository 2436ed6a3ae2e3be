package testioc

import (
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var cache ecache.Cache

// InitCache 和线上一样加上 chatter: 前缀，测试清理缓存的时候不会误删别的数据
func InitCache() ecache.Cache {
	if cache != nil {
		return cache
	}
	if err := loadConfig(); err != nil {
		panic(err)
	}
	cmd := redis.NewClient(&redis.Options{
		Addr: econf.GetString("redis.addr"),
	})
	cache = &ecache.NamespaceCache{
		C:         eredis.NewCache(cmd),
		Namespace: "chatter:",
	}
	return cache
}

package config

import (
    "fmt"
    "time"

    "github.com/patrickmn/go-cache"
)

// OptionsCache holds the distinct-value lists served to the selection
// form (categories, branches, districts, regions). The snapshot only
// changes on restart, so entries can live long.
var OptionsCache *cache.Cache

const (
    optionsCacheDuration   = 24 * time.Hour
    optionsCleanupInterval = 48 * time.Hour
)

func InitCache() {
    OptionsCache = cache.New(optionsCacheDuration, optionsCleanupInterval)
}

func ClearAllCaches() {
    if OptionsCache != nil {
        OptionsCache.Flush()
    }
}

func GetCacheKey(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}

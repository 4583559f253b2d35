package common

const (
	RedisStreamForecastRefresh = "prediction.forecast.refresh"

	RedisStreamGroup    = "worker-group"
	RedisStreamConsumer = "worker-consumer"
)

// Redis key formats.
const (
	RedisKeySession             = "session:%s"
	RedisKeyForecast            = "forecast:%d:%s"
	RedisKeyRecommendationAlert = "recommendation_alert:%d:%s"
)

// Asset types shared by predictions and portfolio assets.
const (
	AssetTypeCurrency  = "currency"
	AssetTypeCommodity = "commodity"
	AssetTypeStock     = "stock"
	AssetTypeCrypto    = "crypto"
)

package config

import (
	"Lumen/internal/ranking"
)

// Config 配置主体
type Config struct {
	Server               ServerConfig        `mapstructure:"server"`
	DB                   DBConfig            `mapstructure:"database"`
	Redis                RedisConfig         `mapstructure:"redis"`
	JWT                  JWTConfig           `mapstructure:"jwt"`
	MinIO                MinIOConfig         `mapstructure:"minio"`
	Logstash             LogstashConfig      `mapstructure:"logstash"`
	Kafka                KafkaConfig         `mapstructure:"kafka"`
	KafkaLikeConsumer    KafkaConsumerGroup  `mapstructure:"kafka_like_consumer"`
	KafkaSaveConsumer    KafkaConsumerGroup  `mapstructure:"kafka_save_consumer"`
	KafkaCommentConsumer KafkaConsumerGroup  `mapstructure:"kafka_comment_consumer"`
	KafkaViewConsumer    KafkaConsumerGroup  `mapstructure:"kafka_view_consumer"`
	Feed                 FeedConfig          `mapstructure:"feed"`
	Ranking              RankingConfig       `mapstructure:"ranking"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	MainBucket string `mapstructure:"main_bucket"`
	UseSSL     bool   `mapstructure:"use_ssl"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaConsumerGroup struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// FeedConfig 信息流编排参数，全部外置
type FeedConfig struct {
	DefaultPageSize      int `mapstructure:"default_page_size"`
	ExplorePageSize      int `mapstructure:"explore_page_size"`
	MaxPageSize          int `mapstructure:"max_page_size"`
	CandidatePool        int `mapstructure:"candidate_pool"`
	TopInterestTags      int `mapstructure:"top_interest_tags"`
	PopularityThreshold  int `mapstructure:"popularity_threshold"`
	DiscoveryWindowDays  int `mapstructure:"discovery_window_days"`
	TrendingWindowDays   int `mapstructure:"trending_window_days"`
	TrendingLimit        int `mapstructure:"trending_limit"`
	InterestLookbackDays int `mapstructure:"interest_lookback_days"`
	InterestTopN         int `mapstructure:"interest_top_n"`
	SuggestedUserLimit   int `mapstructure:"suggested_user_limit"`
	SuggestedMinPosts    int `mapstructure:"suggested_min_posts"`
}

// RankingConfig 打分权重与常量，支持按实验调整
type RankingConfig struct {
	Weights ranking.Weights `mapstructure:"weights"`
	Scoring ranking.Config  `mapstructure:"scoring"`
}

// applyDefaults 配置缺省项回退，保证空配置文件也能跑通
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}

	f := &c.Feed
	if f.DefaultPageSize == 0 {
		f.DefaultPageSize = 10
	}
	if f.ExplorePageSize == 0 {
		f.ExplorePageSize = 24
	}
	if f.MaxPageSize == 0 {
		f.MaxPageSize = 50
	}
	if f.CandidatePool == 0 {
		f.CandidatePool = 500
	}
	if f.TopInterestTags == 0 {
		f.TopInterestTags = 10
	}
	if f.PopularityThreshold == 0 {
		f.PopularityThreshold = 10
	}
	if f.DiscoveryWindowDays == 0 {
		f.DiscoveryWindowDays = 7
	}
	if f.TrendingWindowDays == 0 {
		f.TrendingWindowDays = 7
	}
	if f.TrendingLimit == 0 {
		f.TrendingLimit = 20
	}
	if f.InterestLookbackDays == 0 {
		f.InterestLookbackDays = 30
	}
	if f.InterestTopN == 0 {
		f.InterestTopN = 20
	}
	if f.SuggestedUserLimit == 0 {
		f.SuggestedUserLimit = 10
	}
	if f.SuggestedMinPosts == 0 {
		f.SuggestedMinPosts = 3
	}

	zero := ranking.Weights{}
	if c.Ranking.Weights == zero {
		c.Ranking.Weights = ranking.DefaultWeights()
	}
	if len(c.Ranking.Scoring.RecencyBuckets) == 0 {
		c.Ranking.Scoring = ranking.DefaultConfig()
	}
}

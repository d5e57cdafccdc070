package ranking

// Weights 排序公式的四项线性系数，外部注入，不要求和为 1
type Weights struct {
	Recency      float64 `mapstructure:"recency" json:"recency"`
	Engagement   float64 `mapstructure:"engagement" json:"engagement"`
	Relationship float64 `mapstructure:"relationship" json:"relationship"`
	Interest     float64 `mapstructure:"interest" json:"interest"`
}

// DefaultWeights 默认权重
func DefaultWeights() Weights {
	return Weights{
		Recency:      0.3,
		Engagement:   0.3,
		Relationship: 0.25,
		Interest:     0.15,
	}
}

// RecencyBucket 阶梯式时效分桶：age < MaxAgeHours 时取 Factor
type RecencyBucket struct {
	MaxAgeHours float64 `mapstructure:"max_age_hours"`
	Factor      float64 `mapstructure:"factor"`
}

// Config 打分常量，全部可配置
type Config struct {
	RecencyBuckets    []RecencyBucket `mapstructure:"recency_buckets"`
	RecencyFloor      float64         `mapstructure:"recency_floor"`      // 超过所有分桶后的保底值
	EngagementDivisor float64         `mapstructure:"engagement_divisor"` // 互动量归一化除数
	AffinityDivisor   float64         `mapstructure:"affinity_divisor"`   // 亲密度归一化除数
	FollowedFactor    float64         `mapstructure:"followed_factor"`
	FriendLikedFactor float64         `mapstructure:"friend_liked_factor"`
	BaselineFactor    float64         `mapstructure:"baseline_factor"` // 兴趣召回内容的保底关系分
}

// DefaultConfig 默认打分常量
func DefaultConfig() Config {
	return Config{
		RecencyBuckets: []RecencyBucket{
			{MaxAgeHours: 1, Factor: 1.0},
			{MaxAgeHours: 6, Factor: 0.8},
			{MaxAgeHours: 24, Factor: 0.6},
			{MaxAgeHours: 72, Factor: 0.4},
		},
		RecencyFloor:      0.2,
		EngagementDivisor: 100,
		AffinityDivisor:   10,
		FollowedFactor:    1.0,
		FriendLikedFactor: 0.7,
		BaselineFactor:    0.3,
	}
}

package ranking

import (
	"time"
)

// Signals 单个 (viewer, candidate) 对的原始信号，请求期组装，不落库
type Signals struct {
	Age         time.Duration
	Likes       int
	Comments    int
	Saves       int
	Following   bool // viewer 是否关注作者
	FriendLikes int  // viewer 关注的人中点赞该内容的数量
	Affinity    int  // viewer 历史上点赞该作者内容的次数
}

// SignalVector 归一化后的四个因子，均在 [0,1]
type SignalVector struct {
	Recency      float64
	Engagement   float64
	Relationship float64
	Interest     float64
}

// Dot 与权重做线性加权
func (v SignalVector) Dot(w Weights) float64 {
	return v.Recency*w.Recency +
		v.Engagement*w.Engagement +
		v.Relationship*w.Relationship +
		v.Interest*w.Interest
}

type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) Scorer {
	return Scorer{cfg: cfg}
}

// Vector 由原始信号计算归一化因子，缺失信号按零贡献处理
func (s Scorer) Vector(sig Signals) SignalVector {
	return SignalVector{
		Recency:      s.recencyFactor(sig.Age),
		Engagement:   s.engagementFactor(sig.Likes, sig.Comments, sig.Saves),
		Relationship: s.relationshipFactor(sig.Following, sig.FriendLikes),
		Interest:     s.affinityFactor(sig.Affinity),
	}
}

// Score 加权总分
func (s Scorer) Score(sig Signals, w Weights) float64 {
	return s.Vector(sig).Dot(w)
}

// recencyFactor 阶梯分桶而非连续衰减，保证同桶内容分数可预期
func (s Scorer) recencyFactor(age time.Duration) float64 {
	hours := age.Hours()
	if hours < 0 {
		hours = 0
	}
	for _, b := range s.cfg.RecencyBuckets {
		if hours < b.MaxAgeHours {
			return b.Factor
		}
	}
	return s.cfg.RecencyFloor
}

// engagementFactor 评论权重是点赞的 2 倍，收藏是 3 倍
func (s Scorer) engagementFactor(likes, comments, saves int) float64 {
	if likes < 0 {
		likes = 0
	}
	if comments < 0 {
		comments = 0
	}
	if saves < 0 {
		saves = 0
	}
	raw := float64(likes) + float64(comments)*2 + float64(saves)*3
	return clamp01(raw / s.cfg.EngagementDivisor)
}

func (s Scorer) relationshipFactor(following bool, friendLikes int) float64 {
	if following {
		return s.cfg.FollowedFactor
	}
	if friendLikes > 0 {
		return s.cfg.FriendLikedFactor
	}
	return s.cfg.BaselineFactor
}

func (s Scorer) affinityFactor(interactions int) float64 {
	if interactions <= 0 {
		return 0
	}
	return clamp01(float64(interactions) / s.cfg.AffinityDivisor)
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

package crypt

import (
	"math/rand"

	"github.com/tutils/trand/pcg"
)

// 验证接口实现
var _ rand.Source = (*PCGSource)(nil)
var _ rand.Source64 = (*PCGSource)(nil)

// PCGSource 基于PCG引擎的伪随机源
type PCGSource struct {
	g *pcg.PCG64
}

// NewPCGSource 创建确定性随机源，同一seed产生同一密钥流
func NewPCGSource(seed int64) rand.Source {
	return &PCGSource{g: pcg.NewPCG64(uint64(seed))}
}

// Seed 实现rand.Source接口
func (s *PCGSource) Seed(seed int64) {
	s.g.Seed(uint64(seed))
}

// Uint64 实现rand.Source64接口
func (s *PCGSource) Uint64() uint64 {
	return s.g.Uint64()
}

// Int63 生成63位随机数
func (s *PCGSource) Int63() int64 {
	return int64(s.Uint64() >> 1) // 右移确保63位正整数
}

package otp

import (
	"classportal/internal/core/domain/user"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Generator produces fixed-length numeric codes.
type Generator struct {
	rand *rand.Rand
	lock sync.Mutex
}

func NewGenerator() *Generator {
	return &Generator{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *Generator) GenerateOTP() user.OTPCode {
	g.lock.Lock()
	defer g.lock.Unlock()
	max := 1
	for i := 0; i < user.OTPLength; i++ {
		max *= 10
	}
	return user.OTPCode(fmt.Sprintf("%0*d", user.OTPLength, g.rand.Intn(max)))
}

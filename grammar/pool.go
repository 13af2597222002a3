package grammar

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"

	"github.com/npillmayer/numerals/lexicon"
)

// Accumulators are short-lived objects: the sentence scanner borrows one per
// number run. To avoid multiple allocation of small objects we pool them.
type accumulatorPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalAccumulatorPool *accumulatorPool

func init() {
	globalAccumulatorPool = &accumulatorPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			acc := &Accumulator{}
			return acc, nil
		})
	globalAccumulatorPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalAccumulatorPool.opool = pool.NewObjectPool(globalAccumulatorPool.ctx, factory, config)
}

// BorrowAccumulator returns an accumulator from the pool, reset for the
// given lexicon. Callers return it with Release after use.
func BorrowAccumulator(lex *lexicon.Lexicon) *Accumulator {
	o, _ := globalAccumulatorPool.opool.BorrowObject(globalAccumulatorPool.ctx)
	acc := o.(*Accumulator)
	acc.Reset(lex)
	return acc
}

// Release clears the accumulator and puts it back into the pool.
func (acc *Accumulator) Release() {
	acc.lex = nil
	acc.segments = nil
	if acc.pendingSkips != nil {
		acc.pendingSkips.Clear()
	}
	_ = globalAccumulatorPool.opool.ReturnObject(globalAccumulatorPool.ctx, acc)
}

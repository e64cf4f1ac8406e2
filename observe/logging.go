package observe

import (
	"fmt"

	"github.com/kbukum/resultiter/iterator"
	"github.com/kbukum/resultiter/logger"
	"github.com/kbukum/resultiter/resiter"
	"github.com/kbukum/resultiter/result"
)

// WithLogging logs every failure of the named sequence at Warn with its
// position, and logs exhaustion once at Debug with the branch counts.
func WithLogging[O, E any](it resiter.Iterator[O, E], log *logger.Logger, name string) resiter.Iterator[O, E] {
	return &loggingIter[O, E]{
		source: it,
		log:    log.WithFields(logger.Fields(logger.FieldSequence, name)),
	}
}

type loggingIter[O, E any] struct {
	source   resiter.Iterator[O, E]
	log      *logger.Logger
	index    int
	okCount  int
	errCount int
	done     bool
}

func (it *loggingIter[O, E]) Next() (result.Result[O, E], bool) {
	r, ok := it.source.Next()
	if !ok {
		if !it.done {
			it.done = true
			it.log.Debug("sequence exhausted", logger.Fields(
				logger.FieldOkCount, it.okCount,
				logger.FieldErrCount, it.errCount,
			))
		}
		return r, false
	}
	if e, isErr := r.Err(); isErr {
		it.errCount++
		it.log.Warn("sequence element failed", logger.Fields(
			logger.FieldIndex, it.index,
			logger.FieldBranch, logger.BranchErr,
			logger.FieldError, describe(e),
		))
	} else {
		it.okCount++
	}
	it.index++
	return r, true
}

func (it *loggingIter[O, E]) SizeHint() iterator.Hint { return iterator.SizeHint(it.source) }

func (it *loggingIter[O, E]) Close() error { return it.source.Close() }

func describe(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}

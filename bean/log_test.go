package bean_test

import (
	"bytes"
	"errors"
	"log/slog"
	"runtime"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propath/bean"
	"propath/options"
	"propath/store"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	u := bean.New(bean.WithLogger(logger))

	require.NoError(t, u.SetValue(&store.Order{}, "Customer.Tags[1]", "x", forced))

	out := buf.String()
	assert.Contains(t, out, "msg=materialize")
	assert.Contains(t, out, "msg=grow")
	assert.Contains(t, out, "op=set")
	assert.Contains(t, out, "path=Customer.Tags[1]")
	assert.Contains(t, out, "type=*store.Customer")
	assert.Contains(t, out, "type=[]string")

	buf.Reset()

	require.NoError(t, u.SetValue(&store.Order{}, "Nope", 1, silent))
	assert.Contains(t, buf.String(), "msg=suppressed")
}

type brokenSeq struct{}

func (brokenSeq) Len() int             { return 1 }
func (brokenSeq) At(int) any           { panic("at is broken") }
func (brokenSeq) SetAt(int, any) error { return errors.New("read-only") }
func (brokenSeq) Append(any) error     { return errors.New("read-only") }

func TestPanicIsReturned(t *testing.T) {
	t.Parallel()

	root := &struct{ S brokenSeq }{}

	_, err := bean.GetValue(root, "S[0]", options.ModeNone)
	require.ErrorIs(t, err, bean.ErrUnsupportedContainer)
	assert.Contains(t, err.Error(), "at is broken")

	_, err = bean.GetValue(root, "S[0]", silent)
	require.NoError(t, err)
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	u := bean.New()
	workers := runtime.GOMAXPROCS(0) * 4

	var wg sync.WaitGroup

	errs := make(chan error, workers)

	for w := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			order := &store.Order{}
			for i := range 20 {
				path := "Items[" + strconv.Itoa(i) + "].Quantity"
				if err := u.SetValue(order, path, w*100+i, forced); err != nil {
					errs <- err
					return
				}

				got, err := u.GetValue(order, path, options.ModeNone)
				if err != nil {
					errs <- err
					return
				}

				if got != w*100+i {
					errs <- errors.New("lost write at " + path)
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

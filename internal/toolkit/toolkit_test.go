package toolkit_test

import (
	"context"
	"sync"
	"testing"
	"time"
	"utilbox/internal/config"
	"utilbox/internal/toolkit"
	"utilbox/pkg/domain"
	"utilbox/pkg/logger"
	"utilbox/pkg/metrics"
	"utilbox/pkg/serrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type observation struct {
	operation string
	outcome   string
}

type fakeRecorder struct {
	mu  sync.Mutex
	obs []observation
}

func (f *fakeRecorder) Observe(_ context.Context, operation, outcome string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obs = append(f.obs, observation{operation: operation, outcome: outcome})
}

func newTestToolkit(t *testing.T) (toolkit.Toolkit, *fakeRecorder, *observer.ObservedLogs, context.Context) {
	t.Helper()

	rec := &fakeRecorder{}
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	return toolkit.New(rec, toolkit.Options{}), rec, logs, ctx
}

func TestToolkit_CheckPalindrome(t *testing.T) {
	tk, rec, logs, ctx := newTestToolkit(t)

	res := tk.CheckPalindrome(ctx, "nurses run")
	require.Equal(t, domain.PalindromeResult{Input: "nurses run", Normalized: "nursesrun", Palindrome: true}, res)
	require.Equal(t, "The entered string is a palindrome.", res.Message())

	res = tk.CheckPalindrome(ctx, "hello")
	require.False(t, res.Palindrome)

	res = tk.CheckPalindrome(ctx, "Never odd or even")
	require.False(t, res.Palindrome, "comparison is case-sensitive")

	require.Equal(t, []observation{
		{toolkit.OperationPalindrome, metrics.OutcomeOK},
		{toolkit.OperationPalindrome, metrics.OutcomeOK},
		{toolkit.OperationPalindrome, metrics.OutcomeOK},
	}, rec.obs)

	entries := logs.FilterMessage("palindrome checked").All()
	require.Len(t, entries, 3)
	require.Equal(t, toolkit.OperationPalindrome, entries[0].ContextMap()["operation"])
}

func TestToolkit_CountCharacters(t *testing.T) {
	tk, rec, _, ctx := newTestToolkit(t)

	tally := tk.CountCharacters(ctx, "Hello World")
	require.Equal(t, domain.CharacterTally{Vowels: 3, Consonants: 7}, tally)
	require.Equal(t, domain.CharacterTally{}, tk.CountCharacters(ctx, "12345"))
	require.Len(t, rec.obs, 2)
}

func TestToolkit_CalculateTip(t *testing.T) {
	tk, rec, _, ctx := newTestToolkit(t)

	bill, err := tk.CalculateTip(ctx, "100", "20")
	require.NoError(t, err)
	require.Equal(t, "Total amount to be paid (including tip): $120.00", bill.Message(tk.CurrencySymbol()))

	bill, err = tk.CalculateTip(ctx, "50", "15")
	require.NoError(t, err)
	require.Equal(t, "$57.50", bill.Display(tk.CurrencySymbol()))

	require.Equal(t, []observation{
		{toolkit.OperationTip, metrics.OutcomeOK},
		{toolkit.OperationTip, metrics.OutcomeOK},
	}, rec.obs)
}

func TestToolkit_CalculateTip_InvalidInput(t *testing.T) {
	tk, rec, _, ctx := newTestToolkit(t)

	for _, in := range [][2]string{{"abc", "10"}, {"100", ""}, {"NaN", "NaN"}, {"", ""}} {
		bill, err := tk.CalculateTip(ctx, in[0], in[1])
		require.Nil(t, bill, "no bill for %q", in)
		require.ErrorIs(t, err, serrors.ErrInvalidInput)
		require.Equal(t, domain.InvalidBillMessage, serrors.MessageOf(err))
	}

	require.Len(t, rec.obs, 4)
	for _, o := range rec.obs {
		require.Equal(t, metrics.OutcomeInvalid, o.outcome)
	}
}

func TestToolkit_CurrencySymbol(t *testing.T) {
	require.Equal(t, "$", toolkit.New(nil, toolkit.Options{}).CurrencySymbol())

	cfg := &config.Config{}
	cfg.Tip.CurrencySymbol = "€"
	tk := toolkit.New(nil, toolkit.NewOptions(cfg))
	require.Equal(t, "€", tk.CurrencySymbol())

	bill, err := tk.CalculateTip(context.Background(), "10", "10")
	require.NoError(t, err)
	require.Equal(t, "€11.00", bill.Display(tk.CurrencySymbol()))
}

func TestToolkit_ConcurrentCallsAreIndependent(t *testing.T) {
	tk := toolkit.New(metrics.Nop(), toolkit.Options{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := context.Background()
			assert.True(t, tk.CheckPalindrome(ctx, "racecar").Palindrome)
			assert.Equal(t, 10, tk.CountCharacters(ctx, "Hello World").Letters())
		}()
	}
	wg.Wait()
}

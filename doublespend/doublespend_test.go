package doublespend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"brandscash/core"
	"brandscash/doublespend"
)

func withdrawnCoin(t *testing.T, params core.Params) (core.Coin, core.PartialCoin, *core.Spender) {
	t.Helper()

	issuer, err := core.NewIssuer(params)
	require.NoError(t, err)

	spender, err := core.NewSpender(params)
	require.NoError(t, err)

	z := issuer.Register(spender.I)
	spender.SetRegistrationID(z)

	wp, wrp := issuer.SetupWithdrawal(spender.I)
	withdrawal, challenge, err := spender.Withdraw(wp)
	require.NoError(t, err)

	r := issuer.WithdrawalResponse(wrp, challenge)
	coin := spender.MakeCoin(withdrawal, r)
	partial := core.PartialCoinFromWithdrawal(withdrawal)
	return coin, partial, spender
}

func TestSetDetectsDoubleSpendAndRevealsIdentity(t *testing.T) {
	params, err := core.ParamsRandomToy([]byte("doublespend-key"), 1<<20)
	require.NoError(t, err)

	coin, partial, spender := withdrawnCoin(t, params)

	set := doublespend.NewSet()

	d1 := core.NewCoinChallenge([]byte("first receipt"), coin)
	spent1 := spender.Spend(coin, partial, d1)

	identity, err := doublespend.ExtractIdentity(set, spent1, params)
	require.NoError(t, err)
	require.Nil(t, identity, "first sighting must not report a double-spend")

	d2 := core.NewCoinChallenge([]byte("second receipt"), coin)
	spent2 := spender.Spend(coin, partial, d2)

	identity, err = doublespend.ExtractIdentity(set, spent2, params)
	require.NoError(t, err)
	require.NotNil(t, identity)
	require.Equal(t, 0, identity.Cmp(spender.I))
}

func TestObserveReturnsExistingCoinError(t *testing.T) {
	params, err := core.ParamsRandomToy([]byte("observe-key"), 1<<20)
	require.NoError(t, err)

	coin, partial, spender := withdrawnCoin(t, params)
	set := doublespend.NewSet()

	d1 := core.NewCoinChallenge([]byte("a"), coin)
	spent1 := spender.Spend(coin, partial, d1)
	_, err = set.Observe(spent1)
	require.NoError(t, err)

	d2 := core.NewCoinChallenge([]byte("b"), coin)
	spent2 := spender.Spend(coin, partial, d2)
	prior, err := set.Observe(spent2)
	require.ErrorIs(t, err, doublespend.ErrExistingCoin)
	require.True(t, prior.Coin.Equal(spent1.Coin))
}

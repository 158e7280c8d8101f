package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/jt05610/petri-inhibitor"
	"github.com/jt05610/petri-inhibitor/examples/divider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDrive_Dead(t *testing.T) {
	initial := divider.InitialMarking(6, 2)
	res, err := drive(context.Background(), zaptest.NewLogger(t), divider.Net(), initial, 1000, nil)
	require.NoError(t, err)
	assert.Equal(t, Dead, res.Outcome)
	assert.Equal(t, 18, res.Steps)
	assert.Equal(t, 3, res.Marking.Tokens(divider.Res))
	assert.Equal(t, divider.InitialMarking(6, 2), initial)
}

func TestDrive_Stop(t *testing.T) {
	stop := func(m petri.Marking[divider.Place]) (bool, error) {
		return m.Tokens(divider.Res) == 1, nil
	}
	res, err := drive(context.Background(), zaptest.NewLogger(t), divider.Net(), divider.InitialMarking(6, 2), 1000, stop)
	require.NoError(t, err)
	assert.Equal(t, Satisfied, res.Outcome)
	assert.Equal(t, 3, res.Steps)
	assert.Equal(t, "{ena:1 opa:4 opb:0 res:1 sto:2}", res.Marking.String())
}

func TestDrive_StopError(t *testing.T) {
	boom := errors.New("boom")
	stop := func(petri.Marking[divider.Place]) (bool, error) { return false, boom }
	_, err := drive(context.Background(), zaptest.NewLogger(t), divider.Net(), divider.InitialMarking(6, 2), 1000, stop)
	assert.ErrorIs(t, err, boom)
}

func TestDrive_StepLimit(t *testing.T) {
	// a zero divisor never settles
	res, err := drive(context.Background(), zaptest.NewLogger(t), divider.Net(), divider.InitialMarking(3, 0), 50, nil)
	assert.ErrorIs(t, err, ErrStepLimit)
	require.NotNil(t, res)
	assert.Equal(t, 50, res.Steps)
}

func TestDrive_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := drive(ctx, zaptest.NewLogger(t), divider.Net(), divider.InitialMarking(6, 2), 1000, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDrive_UnknownPlace(t *testing.T) {
	spill := petri.MustTransition("spill",
		map[string]petri.Arc{"a": petri.Regular(1)},
		map[string]petri.Arc{"floor": petri.Regular(1)})
	n := petri.NewNet([]string{"a"}, spill)
	_, err := drive(context.Background(), zaptest.NewLogger(t), n, petri.Marking[string]{"a": 1}, 10, nil)
	assert.ErrorIs(t, err, petri.ErrUnknownPlace)
}

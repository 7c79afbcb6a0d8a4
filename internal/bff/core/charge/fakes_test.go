package charge

import (
	"context"
	"fmt"
	"sync"

	"github.com/jcmexdev/payments-bff/internal/bff/core/domain/entity"
)

type fakePrices map[string]int64

func (f fakePrices) Resolve(_ context.Context, productID, currency string) (int64, error) {
	price, ok := f[productID+"/"+currency]
	if !ok {
		return 0, fmt.Errorf("price %s/%s: %w", productID, currency, entity.ErrUnknownProduct)
	}
	return price, nil
}

type brokenPrices struct{ err error }

func (b brokenPrices) Resolve(context.Context, string, string) (int64, error) {
	return 0, b.err
}

// scriptedGateway replays outcomes in order and repeats the last one.
type scriptedGateway struct {
	mu       sync.Mutex
	outcomes []entity.ChargeOutcome
	commands []entity.ChargeCommand
}

func newScriptedGateway(outcomes ...entity.ChargeOutcome) *scriptedGateway {
	return &scriptedGateway{outcomes: outcomes}
}

func (g *scriptedGateway) Name() string { return "scripted" }

func (g *scriptedGateway) Charge(_ context.Context, cmd entity.ChargeCommand) entity.ChargeOutcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	i := len(g.commands)
	g.commands = append(g.commands, cmd)
	if i >= len(g.outcomes) {
		i = len(g.outcomes) - 1
	}
	return g.outcomes[i]
}

func (g *scriptedGateway) calls() []entity.ChargeCommand {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]entity.ChargeCommand(nil), g.commands...)
}

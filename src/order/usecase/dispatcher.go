package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
	"github.com/MMN3003/selene/src/logger"
	"github.com/MMN3003/selene/src/order/domain"
)

var _ domain.OrderDispatcher = (*Dispatcher)(nil)

// Dispatcher sends one transaction per call and never retries.
type Dispatcher struct {
	client      chaindomain.ChainClient
	market      domain.Market
	explorerURL string
	logger      *logger.Logger
}

// NewDispatcher signs through client. explorerURL holds a %s where the hash goes.
func NewDispatcher(client chaindomain.ChainClient, market domain.Market, explorerURL string, logg *logger.Logger) *Dispatcher {
	return &Dispatcher{
		client:      client,
		market:      market,
		explorerURL: explorerURL,
		logger:      logg,
	}
}

// Submit sends the order's CW20 send on its token contract.
func (d *Dispatcher) Submit(ctx context.Context, order domain.EncodedOrder, sender string) (chaindomain.TxResult, error) {
	if err := d.checkSender(sender); err != nil {
		return chaindomain.TxResult{}, err
	}
	msg, err := domain.EncodeSend(order)
	if err != nil {
		return chaindomain.TxResult{}, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}

	d.logger.Infof("submitting send of %s on %s to %s", order.RawAmount, order.TokenContract, order.RecipientContract)
	res, err := d.client.Execute(ctx, order.TokenContract, msg)
	if err != nil {
		return d.failed(res, err)
	}
	d.logger.Infof("order included tx=%s height=%d", res.Hash, res.Height)
	return res, nil
}

// Cancel removes the sender's resting order at price.
func (d *Dispatcher) Cancel(ctx context.Context, marketID uint64, price, sender string) (chaindomain.TxResult, error) {
	if err := d.checkSender(sender); err != nil {
		return chaindomain.TxResult{}, err
	}
	msg, err := domain.EncodeRemoveLimitOrder(marketID, price)
	if err != nil {
		return chaindomain.TxResult{}, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}

	d.logger.Infof("removing limit order market=%d price=%s", marketID, price)
	res, err := d.client.Execute(ctx, d.market.Contract, msg)
	if err != nil {
		return d.failed(res, err)
	}
	d.logger.Infof("cancel included tx=%s height=%d", res.Hash, res.Height)
	return res, nil
}

// failed keeps the hash of a broadcast tx that was not seen in a block, so it is not sent again.
func (d *Dispatcher) failed(res chaindomain.TxResult, err error) (chaindomain.TxResult, error) {
	if errors.Is(err, domain.ErrTxPending) {
		d.logger.Warnf("tx %s broadcast, inclusion not observed: %v", res.Hash, err)
		return chaindomain.TxResult{Hash: res.Hash}, err
	}
	return chaindomain.TxResult{}, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
}

func (d *Dispatcher) ExplorerURL(txHash string) string {
	if d.explorerURL == "" {
		return ""
	}
	if strings.Contains(d.explorerURL, "%s") {
		return strings.Replace(d.explorerURL, "%s", txHash, 1)
	}
	return strings.TrimSuffix(d.explorerURL, "/") + "/" + txHash
}

func (d *Dispatcher) checkSender(sender string) error {
	if addr := d.client.Address(); sender != addr {
		return fmt.Errorf("%w: sender %s is not the signing account %s", domain.ErrSubmissionFailed, sender, addr)
	}
	return nil
}

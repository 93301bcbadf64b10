package tracker

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
)

// SecurityPolicy derives security flags of a mined transaction. The
// transaction can be nil when the provider did not return it.
type SecurityPolicy interface {
	Evaluate(tx *types.Transaction, receipt *types.Receipt) SecurityFlags
}

// GasPolicy flags gas prices above a ceiling as anomalies and top of block
// inclusion above half the ceiling as likely MEV.
type GasPolicy struct {
	MaxGasPrice *big.Int
}

func NewGasPolicy(maxGasPriceGwei float64) *GasPolicy {
	ceiling, _ := new(big.Float).Mul(big.NewFloat(maxGasPriceGwei), big.NewFloat(params.GWei)).Int(nil)
	return &GasPolicy{
		MaxGasPrice: ceiling,
	}
}

func (p *GasPolicy) Evaluate(tx *types.Transaction, receipt *types.Receipt) SecurityFlags {
	var flags SecurityFlags
	if p.MaxGasPrice == nil || p.MaxGasPrice.Sign() == 0 {
		return flags
	}

	price := receipt.EffectiveGasPrice
	if price == nil && tx != nil {
		price = tx.GasPrice()
	}
	if price == nil {
		return flags
	}

	flags.GasAnomaly = price.Cmp(p.MaxGasPrice) > 0
	half := new(big.Int).Div(p.MaxGasPrice, big.NewInt(2))
	flags.MEVDetected = receipt.TransactionIndex == 0 && price.Cmp(half) > 0
	return flags
}
